package report

type Bucket int

const (
	BucketLow Bucket = iota
	BucketFair
	BucketGood
	BucketHigh
)

func BucketOf(confidence float64) Bucket {
	switch {
	case confidence >= 0.9:
		return BucketHigh
	case confidence >= 0.7:
		return BucketGood
	case confidence >= 0.5:
		return BucketFair
	}
	return BucketLow
}

func (b Bucket) String() string {
	switch b {
	case BucketHigh:
		return "high"
	case BucketGood:
		return "good"
	case BucketFair:
		return "fair"
	}
	return "low"
}
