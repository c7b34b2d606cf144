//go:build !unix

package main

func raiseAbort()   { exitCodeFallback(134) }
func raiseIllegal() { exitCodeFallback(132) }
