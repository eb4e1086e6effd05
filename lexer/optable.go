package lexer

// opTable is the longest-match registry for multi-character operators:
// every prefix of every registered operator is recorded, so scanOperator
// can greedily extend a candidate while some registered operator still
// starts with it.
type opTable struct {
	prefixes map[string]bool
	ops      map[string]Kind
}

func newOpTable() opTable {
	t := opTable{prefixes: map[string]bool{}, ops: map[string]Kind{}}
	for _, d := range opDefs {
		t.register(d.text, d.kind)
	}
	return t
}

func (t opTable) register(op string, kind Kind) {
	t.ops[op] = kind
	for i := 1; i <= len(op); i++ {
		t.prefixes[op[:i]] = true
	}
}

func (t opTable) hasPrefix(s string) bool { return t.prefixes[s] }

func (t opTable) lookup(s string) (Kind, bool) {
	kind, ok := t.ops[s]
	return kind, ok
}

type opDef struct {
	text string
	kind Kind
}

// opDefs lists every operator this lexer recognizes. Order does not
// matter — hasPrefix/lookup are table-driven, not first-match — but
// longer forms of a shared prefix (e.g. "==" alongside "=") must both be
// present for the greedy extension in scanOperator to find them.
var opDefs = []opDef{
	{"=", TokenAssign},
	{"+=", TokenPlusAssign},
	{"-=", TokenMinusAssign},
	{"*=", TokenTimesAssign},
	{"/=", TokenDivAssign},
	{"%=", TokenModuloAssign},
	{"&=", TokenAndAssign},
	{"^=", TokenCaretAssign},
	{"~=", TokenTildeAssign},
	{"|=", TokenPipeAssign},

	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenTimes},
	{"/", TokenDiv},
	{"%", TokenModulo},
	{"&", TokenAnd},
	{"^", TokenCaret},
	{"~", TokenTilde},
	{"|", TokenPipe},

	{"<", TokenLess},
	{"<=", TokenLessEqual},
	{">", TokenGreater},
	{">=", TokenGreaterEqual},
	{"==", TokenEqual},
	{"!=", TokenNotEqual},
	{"&&", TokenAndAnd},
	{"||", TokenPipePipe},
	{"!", TokenNot},

	{"++", TokenPlusPlus},
	{"--", TokenMinusMinus},

	{"(", TokenLParen},
	{")", TokenRParen},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"[", TokenLBracket},
	{"]", TokenRBracket},

	{",", TokenComma},
	{";", TokenSemicolon},
	{":", TokenColon},
	{".", TokenDot},
}
