package mdast

var tokenKindNames = [...]string{
	TokSpace:          "Space",
	TokTab:            "Tab",
	TokEOL:            "EOL",
	TokCharSequence:   "CharSequence",
	TokDigits:         "Digits",
	TokCharEntityRef:  "CharEntityRef",
	TokNumericCharRef: "NumericCharRef",
	TokEscapedChar:    "EscapedChar",
	TokAmpersand:      "Ampersand",
	TokBackslash:      "Backslash",
	TokBacktick:       "Backtick",
	TokBang:           "Bang",
	TokColon:          "Colon",
	TokDot:            "Dot",
	TokDoubleQuote:    "DoubleQuote",
	TokEq:             "Eq",
	TokGT:             "GT",
	TokLBracket:       "LBracket",
	TokLParen:         "LParen",
	TokLT:             "LT",
	TokMinus:          "Minus",
	TokPlus:           "Plus",
	TokRBracket:       "RBracket",
	TokRParen:         "RParen",
	TokSharp:          "Sharp",
	TokSingleQuote:    "SingleQuote",
	TokSlash:          "Slash",
	TokStar:           "Star",
	TokUnderscore:     "Underscore",
	TokCommentOpen:    "CommentOpen",
	TokCommentClose:   "CommentClose",
	TokEOF:            "EOF",
}

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return "Unknown"
}
