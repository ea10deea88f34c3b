package quasi

import "strings"

// String renders the stream as source text. Tokens are separated by a single
// space except after a joint Punct, and brace groups are padded with spaces,
// so printing is stable for equal trees regardless of original layout.
func (s TokenStream) String() string {
	var sb strings.Builder
	writeStream(&sb, s)
	return sb.String()
}

func writeStream(sb *strings.Builder, s TokenStream) {
	for i, tok := range s {
		if i > 0 && !isJoint(s[i-1]) {
			sb.WriteString(StrSpace)
		}
		writeToken(sb, tok)
	}
}

func writeToken(sb *strings.Builder, tok Token) {
	group, ok := tok.(Group)
	if !ok {
		sb.WriteString(tok.String())
		return
	}

	sb.WriteString(group.Delimiter.Open())
	padded := group.Delimiter == DelimiterBrace && !group.Stream.IsEmpty()
	if padded {
		sb.WriteString(StrSpace)
	}
	writeStream(sb, group.Stream)
	if padded {
		sb.WriteString(StrSpace)
	}
	sb.WriteString(group.Delimiter.Close())
}

func isJoint(tok Token) bool {
	p, ok := tok.(Punct)
	return ok && p.Spacing == SpacingJoint
}
