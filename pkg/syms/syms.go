package syms

import (
	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/symguess/pkg/logging"
	"github.com/vietanhduong/symguess/pkg/logging/logfields"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "syms"})

// Finder looks up the position of a symbol by its exact name. When a name
// occurs more than once, the first occurrence is reported.
type Finder interface {
	Find(name string) (int, bool)
}
