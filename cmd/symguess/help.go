package main

const usageLine = "usage: symguess <older_path> <newer_path> [flags]"

const helpMessage = `after running version tracking, there's a percentage of functions that may be lost. this tool aims to find such functions and has a fairly high success rate in that.

before running, you need to dump the known functions in the old and new binaries into text files, one "<name> - <hex address>" pair per line, and then run this tool against the two files. it will then try to find every missing function, and tell you the guessed offset and the confidence of the algorithm in that offset.

note: this is nothing more than simple math so any output offset may not precisely match the target function. it may be a few instructions in, or it may be in a previous function in the binary, though 100% confidence usually indicates an exact match. it is on *you* to check every match and adjust properly. even with 100% confidence, the guesses can be wrong (albeit not commonly), so if it looks off, double check.

the tool is also *not* expected to work across different platforms in any capacity, and issues may also arise when trying very distant versions on the same platform. your experience may vary.`
