// Package hack implements a two-pass assembler for the Hack instruction set.
//
// Every Hack instruction is one 16-bit word. An address instruction
// (@value) loads a 15-bit constant into the A register. A compute
// instruction (dest=comp;jump) selects an ALU computation, the registers
// that receive its result, and an optional jump condition.
//
// Assembly runs in strict sequence. The first pass strips (LABEL)
// definitions and binds each label to the address of the instruction that
// follows it. The second pass rewrites every symbolic @name into a decimal
// address, allocating RAM from address 16 for variables in the order they
// are first seen. Only then is each resolved line encoded.
package hack
