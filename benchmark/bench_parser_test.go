//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	"github.com/dzonerzy/snapcursor/snap"
)

// Category: cursor

type benchFlag int

const (
	benchPort benchFlag = iota
	benchVerbose
	benchHost
	benchMode
	benchRatio
)

var benchFlags = snap.MustFlagTable([]snap.Ident[benchFlag]{
	{ID: benchPort, Name: "port"},
	{ID: benchVerbose, Name: "verbose"},
	{ID: benchHost, Name: "host"},
	{ID: benchMode, Name: "mode"},
	{ID: benchRatio, Name: "ratio"},
}, snap.Meta[benchFlag]{ID: benchPort, Short: 'p'},
	snap.Meta[benchFlag]{ID: benchVerbose, Short: 'v'},
)

type benchModeValue int

var benchModes = snap.MustValueTable([]snap.Ident[benchModeValue]{
	{ID: 0, Name: "fast"},
	{ID: 1, Name: "safe"},
	{ID: 2, Name: "dry_run"},
})

// parseBench runs a flag loop over c and returns the first error
func parseBench(c *snap.Cursor) error {
	for {
		id, ok, err := snap.MatchFlag(c, benchFlags)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch id {
		case benchPort:
			_, err = snap.ExpectUint[uint16](c)
		case benchVerbose:
		case benchHost:
			_, err = c.ExpectString()
		case benchMode:
			_, err = snap.ExpectEnum(c, benchModes, "mode")
		case benchRatio:
			_, err = snap.ExpectFloat[float64](c)
		}
		if err != nil {
			return err
		}
	}
	for c.HasMore() {
		c.Next()
	}
	return nil
}

func benchArgs(b *testing.B, args []string) {
	c := snap.NewCursor(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset(args)
		if err := parseBench(c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCursorSimple(b *testing.B) {
	benchArgs(b, []string{"--port", "8080", "--verbose"})
}

func BenchmarkCursorShortFlags(b *testing.B) {
	benchArgs(b, []string{"-v", "-p", "8080"})
}

func BenchmarkCursorComplex(b *testing.B) {
	benchArgs(b, []string{
		"--port", "0x1F90", "--verbose", "--host", "localhost",
		"--mode", "dry-run", "--ratio", "0.75", "--", "a", "b", "c",
	})
}

func BenchmarkCursorUnknownFlag(b *testing.B) {
	c := snap.NewCursor(nil)
	args := []string{"--port", "80", "--nope"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset(args)
		if err := parseBench(c); err == nil {
			b.Fatal("expected unknown flag error")
		}
	}
}

func BenchmarkHasMoreFlags(b *testing.B) {
	c := snap.NewCursor(nil)
	args := []string{"-a", "--bb", "-c", "--dd", "value"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset(args)
		for c.HasMoreFlags() {
			c.Next()
		}
	}
}

func BenchmarkTableBuild(b *testing.B) {
	set := []snap.Ident[benchFlag]{
		{ID: benchPort, Name: "port"},
		{ID: benchVerbose, Name: "verbose"},
		{ID: benchHost, Name: "host"},
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := snap.NewFlagTable(set, snap.Meta[benchFlag]{ID: benchPort, Short: 'p'}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkErrorRender(b *testing.B) {
	e := &snap.ParseError{Type: snap.ErrorTypeInvalidValue, Token: "potato", ExpectedName: "mode"}
	buf := make([]byte, 0, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = e.AppendMessage(buf[:0])
	}
}
