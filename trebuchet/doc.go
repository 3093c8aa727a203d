// Package trebuchet recovers calibration values from an amended document:
// each line's value is its first digit followed by its last digit.
//
// In spelled mode the words "one" through "nine" count as digits as well.
// Words may overlap, so "twone" starts with 2 and ends with 1.
package trebuchet
