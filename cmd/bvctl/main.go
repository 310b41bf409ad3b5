// Command bvctl is a command-line harness for exercising a dynabitvector
// BitVector from the shell. Every invocation is stateless: the vector's
// initial content is supplied via --bits and the result (or answer) is
// printed to stdout, since the library itself has no persistence layer.
package main

func main() {
	execute()
}
