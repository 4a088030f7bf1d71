package skill

// Condition — скомпилированное дерево условий применимости.
// Test чистый: только чтение снимка Env, без блокировок и аллокаций.
type Condition interface {
	Test(env *Env) bool

	// Failure message plumbing: either a literal message or a system
	// message id, optionally prefixed with the skill name.
	SetMessage(msg string)
	SetMessageID(id int32)
	AddName()
	Message() (string, int32, bool)
}

// condBase carries the user-facing failure message for any node.
type condBase struct {
	msg     string
	msgID   int32
	addName bool
}

func (b *condBase) SetMessage(msg string)  { b.msg = msg }
func (b *condBase) SetMessageID(id int32)  { b.msgID = id }
func (b *condBase) AddName()               { b.addName = true }
func (b *condBase) Message() (string, int32, bool) {
	return b.msg, b.msgID, b.addName
}

// LogicAnd is true when every child is true.
// Пустой узел — аномалия данных: логируется при компиляции, Test даёт false.
type LogicAnd struct {
	condBase
	Conditions []Condition
}

// Add appends a child, ignoring nils (dropped predicates).
func (c *LogicAnd) Add(cond Condition) {
	if cond != nil {
		c.Conditions = append(c.Conditions, cond)
	}
}

func (c *LogicAnd) Test(env *Env) bool {
	if len(c.Conditions) == 0 {
		return false
	}
	for _, cond := range c.Conditions {
		if !cond.Test(env) {
			return false
		}
	}
	return true
}

// LogicOr is true when any child is true.
type LogicOr struct {
	condBase
	Conditions []Condition
}

// Add appends a child, ignoring nils.
func (c *LogicOr) Add(cond Condition) {
	if cond != nil {
		c.Conditions = append(c.Conditions, cond)
	}
}

func (c *LogicOr) Test(env *Env) bool {
	for _, cond := range c.Conditions {
		if cond.Test(env) {
			return true
		}
	}
	return false
}

// LogicNot inverts its single child.
type LogicNot struct {
	condBase
	Condition Condition
}

func (c *LogicNot) Test(env *Env) bool {
	return !c.Condition.Test(env)
}

// LeafCategory — категория листа условия.
type LeafCategory int8

const (
	LeafPlayer LeafCategory = iota
	LeafTarget
	LeafUsing
	LeafGame
)

// Leaf is a single compiled predicate. The closure captures everything
// resolved at compile time (masks, id sets, squared radii).
type Leaf struct {
	condBase
	Category LeafCategory
	Attr     string
	Pred     func(env *Env) bool
}

func (c *Leaf) Test(env *Env) bool {
	return c.Pred(env)
}

// NewLeaf builds a leaf predicate for the given category and source attribute.
func NewLeaf(cat LeafCategory, attr string, pred func(env *Env) bool) *Leaf {
	return &Leaf{Category: cat, Attr: attr, Pred: pred}
}

// JoinAnd combines two conditions, reusing an existing LogicAnd.
// Nil cond returns c unchanged.
func JoinAnd(cond, c Condition) Condition {
	if cond == nil {
		return c
	}
	if and, ok := cond.(*LogicAnd); ok {
		and.Add(c)
		return and
	}
	and := &LogicAnd{}
	and.Add(cond)
	and.Add(c)
	return and
}
