package viewfind

import (
	"context"
	"testing"
)

func BenchmarkResolveMain(b *testing.B) {
	_, p := memViews(b, map[string]string{"/r2/users/index.tmpl": "x"})
	reg := echoRegistry("tmpl")
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := New("users.tmpl", WithRoots("/r1", "/r2"), WithEngines(reg), WithProber(p))
		if err != nil {
			b.Fatal(err)
		}
		if err := v.ResolveMain(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDescribeRoots(b *testing.B) {
	roots := []string{"views", "shared", "themes/default"}
	for i := 0; i < b.N; i++ {
		_ = describeRoots(roots)
	}
}
