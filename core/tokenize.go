package core

// MaxTokens bounds how many tokens are parsed from one line: the command
// name plus 127 positional arguments. Tokens past the bound are dropped.
const MaxTokens = 128

// Tokenize splits a line on runs of spaces and tabs into maximal
// non-whitespace tokens in left-to-right order. The tokens are substring
// views of line, no copies are made. An empty or all-whitespace line
// yields no tokens. Tokenize cannot fail.
func Tokenize(line string) []string {
	var tokens []string

	start := -1
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t':
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
		default:
			if start < 0 {
				if len(tokens) == MaxTokens {
					return tokens
				}
				start = i
			}
		}
	}

	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens
}
