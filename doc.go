// Package forth implements the core of an indirect-threaded, Forth-style
// virtual machine: a shared dictionary and byte-addressed data space,
// cooperatively scheduled tasks each with their own data/return/control/
// float stacks, an outer interpreter that tokenizes and either executes or
// compiles, and an inner interpreter that threads through compiled word
// ids. It does not include a command-line front end, a file loader, or
// networking — those are left to a host built on top of VM.
package forth
