/*
Package parity decides whether a number is odd or even.

Integers use the remainder definition directly, so negative odd values (whose Go
remainder is -1) report odd as well:

	parity.IsOdd(-3)  // true
	parity.IsEven(0)  // true

Floating point values are supported through [IsOddFloat] and [IsEvenFloat]. They apply
the same remainder rule with [math.Mod] and do not validate their input: 2.5 is odd
because its remainder is not zero, and so are NaN and the infinities.
*/
package parity
