// Package token provides tokenization support for SavedVariables literal text.
//
// [Lexer] produces one [Token] per call to [Lexer.Next], tracking the current
// line for diagnostics. [Tokenize] collects a whole input.
//
// [CommentEnd] and [StringEnd] expose the comment and string rules to callers
// that scan raw bytes without building tokens, so both agree on what text is
// opaque.
package token
