// Package policy implements the acceptance predicate applied to password
// candidates: inclusive length bounds plus optional character-class
// requirements (upper-case, lower-case, digit, special).
//
// A Policy is a plain value. The zero value accepts every string, including
// the empty one.
//
// # Matching
//
// Matches checks the length bounds first and then scans the string once,
// left to right. Each character is classified by the first class in the
// chain upper → lower → digit → special whose flag is not yet set, so a
// character never counts twice. As soon as every required flag is set the
// scan stops and the string is accepted, which keeps matching cheap for long
// candidates whose required classes appear early. The length check always
// runs first, so an early accept never bypasses MinLen or MaxLen.
//
// "Special" means any character that is neither a letter nor a digit, unless
// SpecialCharset is set, in which case it means membership in that set.
//
//	min := 8
//	p := policy.Policy{MinLen: &min, RequireDigit: true}
//	p.Matches("password1") // true
//	p.Matches("password")  // false
//
// # Merging
//
// Merge layers command-line overrides on top of a configured policy:
// length bounds and the special charset are replaced when set, require flags
// are OR-ed.
package policy
