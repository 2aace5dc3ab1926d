// anscheck checks that a program's output contains every expected answer.
//
// anscheck reads the output file (output.txt by default, or stdin for "-"),
// decodes it (UTF-16 with byte order mark detection unless -encoding says
// otherwise), splits it into whitespace-delimited tokens and looks up each
// answer of the answer key among them. Each answer gets a green PASS or red
// FAIL line, followed by the verdict.
//
// Example:
//
//	lox tests.lox > output.txt && anscheck
//
// Output:
//
//	PASS  =   RECURSION_TEST
//	PASS  =   1
//	PASS  =   13
//	PASS  =   55
//	PASS  =   233
//	PASS  =   CLOSURE_TESTS
//	PASS  =   global
//	PASS  =   global
//	PASS  =   CLASS_TESTS
//	PASS  =   Bagel
//	PASS  =   instance
//	PASS  =   DevonshireCream
//	PASS  =   Crunch_crunch_crunch!
//	FAIL  =   Foo
//	TEST FAILED
//
// The built-in key covers the Lox recursion, closure and class scripts.
// Other keys are YAML, either a bare list or a mapping:
//
//	name: fib
//	answers: [1, 1, 2, 3, 5, 8]
//
// anscheck exits 0 when every answer is found, 1 when any is missing and 2
// when the check could not run.
package main
