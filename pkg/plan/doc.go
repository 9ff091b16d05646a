// Package plan compiles a declarative munge level into an immutable Plan: the
// ordered leet tables, ordered suffixes, include-base flag and Policy that
// drive candidate generation for one run.
//
// Compilation is the second half of a two-phase configuration process. A
// Registry holds the named leet sets, suffix sets and level definitions
// (typically decoded from a rules file by package rules); Compile resolves
// one level's references against it.
//
//	p, err := plan.Compile(reg, 5, pol)
//	if err != nil {
//	    var cerr *plan.ConfigError
//	    if errors.As(err, &cerr) {
//	        // report cerr.Section
//	    }
//	}
//
// # Error Handling
//
// Every compilation failure is a *ConfigError wrapping one of the sentinel
// errors (ErrLevelNotDefined, ErrUnknownLeetSet, ErrUnknownSuffixSet, ...),
// so callers can use errors.Is for the cause and errors.As for the section.
package plan
