package lexer

import "testing"

func FuzzLex(f *testing.F) {
	addCommonSeeds(f)

	f.Fuzz(func(t *testing.T, src []byte) {
		t.Helper()

		// Keep the target responsive; fuzzing should explore shape, not spend cycles on huge blobs.
		if len(src) > 512*1024 {
			t.Skip()
		}

		for _, cfg := range []Config{
			{Mode: ModeScript},
			{Mode: ModeScript, CStyleEscapes: true},
			{Mode: ModeLuaDefines},
		} {
			res := Lex(src, cfg)
			if len(res.Tokens) == 0 {
				t.Fatal("lexer returned no tokens")
			}
			last := res.Tokens[len(res.Tokens)-1]
			if last.Kind != TokenEOF {
				t.Fatalf("last token kind = %v, want EOF", last.Kind)
			}

			prevEnd := -1
			for i, tok := range res.Tokens {
				if err := tok.Span.Validate(); err != nil {
					t.Fatalf("token[%d] invalid span %s: %v", i, tok.Span, err)
				}
				if int(tok.Span.End) > len(src) {
					t.Fatalf("token[%d] span %s out of bounds (len=%d)", i, tok.Span, len(src))
				}
				if prevEnd > int(tok.Span.Start) {
					t.Fatalf("token spans out of order: prevEnd=%d curStart=%d", prevEnd, tok.Span.Start)
				}
				prevEnd = int(tok.Span.End)
			}
		}
	})
}

func addCommonSeeds(f *testing.F) {
	f.Helper()

	for _, s := range [][]byte{
		nil,
		[]byte(""),
		[]byte("a = b\n"),
		[]byte("a = { b = c }\n"),
		[]byte(`a = "unterminated`), // malformed string
		{0xff, 0xfe, 0xfd},         // invalid UTF-8 bytes
		[]byte("owner = { ENG REB }\n"),
		[]byte("color = { 1 2 3 }\n"),
		[]byte("a = 'x', b = 'y' -- comment\n"),
	} {
		f.Add(s)
	}
}
