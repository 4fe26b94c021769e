// Package log is the driver's leveled logging facade. It is silent by
// default; call SetLevel to turn on error, info or trace output.
package log
