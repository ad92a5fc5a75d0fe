//go:build !dataparallel

package parallel

var defaultEngine Engine = Threads{}
