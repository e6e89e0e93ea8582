// Package snap is a zero-allocation, caller-driven argument cursor.
//
// Instead of registering a schema up front, the calling code walks the
// argument list and asks at every step for what it expects next:
//
//	c := snap.NewCursor(os.Args[1:])
//	for {
//		id, ok, err := snap.MatchFlag(c, flags)
//		if err != nil {
//			return err
//		}
//		if !ok {
//			break
//		}
//		switch id {
//		case optPort:
//			port, err = snap.ExpectUint[uint16](c)
//		case optVerbose:
//			verbose = true
//		}
//		if err != nil {
//			return err
//		}
//	}
//	files := c.Remaining()
//
// # Grammar
//
//   - "--" ends flag parsing and is dropped.
//   - Tokens of length 0 or 1, "-" included, are values.
//   - "-x" is a short flag, "--name" and "-name" are long flags.
//   - Everything else is a value, and the first value ends flag parsing
//     for good.
//
// Combined short flags ("-abc") and inline values ("--name=value") are
// not split; they are matched as written.
//
// # Names
//
// Flag and value spellings come from a [Table] built once per closed set
// of identifiers. A symbolic name such as "dry_run" is spelled "--dry-run"
// as a flag and "dry-run" as a value unless [Meta] overrides it.
//
// # Errors
//
// Failures are reported as *[ParseError]. A cursor keeps only the latest
// one and reuses its storage, so read it before the next call.
package snap
