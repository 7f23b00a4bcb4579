// Package laws checks the algebraic laws of finite sets against concrete
// samples. It backs the property tests of finset and the check command.
package laws

import (
	"fmt"

	"github.com/mazzegi/finset/finset"
)

type Violation struct {
	Law    string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Law, v.Detail)
}

type checker[T any, E finset.Eq[T]] struct {
	empty finset.Finset[T, E]
	vs    []Violation
}

func (c *checker[T, E]) expect(ok bool, law string, format string, args ...any) {
	if ok {
		return
	}
	c.vs = append(c.vs, Violation{Law: law, Detail: fmt.Sprintf(format, args...)})
}

// Check evaluates the set laws on every sample, pair and triple of samples,
// and on every element of elems against every sample.
func Check[T any, E finset.Eq[T]](samples []finset.Finset[T, E], elems []T) []Violation {
	c := &checker[T, E]{empty: finset.Empty[T, E]()}

	c.expect(c.empty.Card() == 0, "card-empty", "card(empty) = %d", c.empty.Card())
	for _, a := range elems {
		c.expect(!c.empty.Contains(a), "mem-empty", "%v in empty", a)
	}
	for _, s := range samples {
		c.single(s)
		for _, a := range elems {
			c.element(a, s)
			for _, b := range elems {
				c.expect(s.Insert(a).Insert(b).Equal(s.Insert(b).Insert(a)), "insert-comm",
					"insert(%v, insert(%v, %v)) differs", a, b, s)
			}
		}
		for _, t := range samples {
			c.pair(s, t, elems)
			for _, u := range samples {
				c.triple(s, t, u)
			}
		}
	}
	return c.vs
}

func (c *checker[T, E]) single(s finset.Finset[T, E]) {
	c.expect(s.Equal(s), "eq-refl", "%v != %v", s, s)
	c.expect(s.Union(s).Equal(s), "union-idem", "union(%v, %v) = %v", s, s, s.Union(s))
	c.expect(s.Intersection(s).Equal(s), "inter-idem", "inter(%v, %v) = %v", s, s, s.Intersection(s))
	c.expect(s.Union(c.empty).Equal(s), "union-id", "union(%v, empty) = %v", s, s.Union(c.empty))
	c.expect(c.empty.Union(s).Equal(s), "union-id", "union(empty, %v) = %v", s, c.empty.Union(s))
	c.expect(s.Intersection(c.empty).IsEmpty(), "inter-absorb", "inter(%v, empty) = %v", s, s.Intersection(c.empty))
	c.expect(c.empty.Subset(s), "subset-empty", "empty not subset of %v", s)
	c.expect(s.Subset(s), "subset-refl", "%v not subset of itself", s)

	card := finset.Induct(s, 0, func(a T, rest finset.Finset[T, E], n int) int {
		c.expect(!rest.Contains(a), "induct-fresh", "%v already in %v", a, rest)
		c.expect(rest.Card() == n, "induct-card", "card(%v) = %d, expect %d", rest, rest.Card(), n)
		return n + 1
	})
	c.expect(card == s.Card(), "induct-count", "induction over %v counted %d", s, card)
	rebuilt := finset.Induct(s, c.empty, func(a T, _ finset.Finset[T, E], acc finset.Finset[T, E]) finset.Finset[T, E] {
		return acc.Insert(a)
	})
	c.expect(rebuilt.Equal(s), "induct-rebuild", "rebuilt %v from %v", rebuilt, s)

	if a, rest, ok := s.Decompose(); ok {
		c.expect(!rest.Contains(a) && rest.Insert(a).Equal(s) && rest.Card() == s.Card()-1,
			"decompose", "%v into %v and %v", s, a, rest)
	} else {
		c.expect(s.IsEmpty(), "decompose", "non-empty %v did not decompose", s)
	}
}

func (c *checker[T, E]) element(a T, s finset.Finset[T, E]) {
	ins := s.Insert(a)
	ers := s.Erase(a)
	c.expect(ins.Contains(a), "insert-mem", "%v not in insert(%v, %v)", a, a, s)
	c.expect(!ers.Contains(a), "erase-mem", "%v in erase(%v, %v)", a, a, s)
	c.expect(ins.Insert(a).Equal(ins), "insert-idem", "insert(%v) twice into %v", a, s)
	c.expect(s.Subset(ins), "insert-subset", "%v not subset of %v", s, ins)
	c.expect(ers.Subset(s), "erase-subset", "%v not subset of %v", ers, s)
	c.expect(finset.Singleton[T, E](a).Equal(c.empty.Insert(a)), "singleton", "singleton(%v)", a)
	if s.Contains(a) {
		c.expect(ers.Insert(a).Equal(s), "insert-erase", "insert(%v, erase(%v, %v)) = %v", a, a, s, ers.Insert(a))
		c.expect(ins.Card() == s.Card(), "card-insert-mem", "card(insert(%v, %v)) = %d", a, s, ins.Card())
		c.expect(ers.Card() == s.Card()-1, "card-erase", "card(erase(%v, %v)) = %d", a, s, ers.Card())
	} else {
		c.expect(ins.Erase(a).Equal(s), "erase-insert", "erase(%v, insert(%v, %v)) = %v", a, a, s, ins.Erase(a))
		c.expect(ins.Card() == s.Card()+1, "card-insert", "card(insert(%v, %v)) = %d", a, s, ins.Card())
		c.expect(ers.Equal(s), "erase-absent", "erase(%v, %v) = %v", a, s, ers)
	}
}

func (c *checker[T, E]) pair(s, t finset.Finset[T, E], elems []T) {
	u := s.Union(t)
	i := s.Intersection(t)
	c.expect(u.Equal(t.Union(s)), "union-comm", "%v, %v", s, t)
	c.expect(i.Equal(t.Intersection(s)), "inter-comm", "%v, %v", s, t)
	c.expect(s.Subset(u) && t.Subset(u), "union-upper", "%v, %v", s, t)
	c.expect(i.Subset(s) && i.Subset(t), "inter-lower", "%v, %v", s, t)
	c.expect(s.Union(i).Equal(s), "absorb", "union(%v, inter(%v, %v))", s, s, t)
	c.expect(s.Intersection(u).Equal(s), "absorb", "inter(%v, union(%v, %v))", s, s, t)
	c.expect(s.Difference(t).Union(i).Equal(s), "diff-split", "%v, %v", s, t)
	c.expect(s.Difference(t).Intersection(t).IsEmpty(), "diff-disjoint", "%v, %v", s, t)

	// extensionality, both directions
	sameMembers := s.Subset(t) && t.Subset(s)
	for _, a := range elems {
		c.expect(u.Contains(a) == (s.Contains(a) || t.Contains(a)), "union-mem", "%v in union(%v, %v)", a, s, t)
		c.expect(i.Contains(a) == (s.Contains(a) && t.Contains(a)), "inter-mem", "%v in inter(%v, %v)", a, s, t)
		if s.Equal(t) {
			c.expect(s.Contains(a) == t.Contains(a), "ext", "%v distinguishes equal %v and %v", a, s, t)
		}
	}
	c.expect(s.Equal(t) == sameMembers, "ext", "equal(%v, %v) = %t", s, t, s.Equal(t))
	if s.Equal(t) {
		c.expect(s.Card() == t.Card(), "ext-card", "equal %v and %v differ in card", s, t)
	}
}

func (c *checker[T, E]) triple(s, t, u finset.Finset[T, E]) {
	c.expect(s.Union(t).Union(u).Equal(s.Union(t.Union(u))), "union-assoc", "%v, %v, %v", s, t, u)
	c.expect(s.Intersection(t).Intersection(u).Equal(s.Intersection(t.Intersection(u))), "inter-assoc", "%v, %v, %v", s, t, u)
	c.expect(s.Intersection(t.Union(u)).Equal(s.Intersection(t).Union(s.Intersection(u))), "distrib-inter", "%v, %v, %v", s, t, u)
	c.expect(s.Union(t.Intersection(u)).Equal(s.Union(t).Intersection(s.Union(u))), "distrib-union", "%v, %v, %v", s, t, u)
}

// CheckImage evaluates the functor laws of Image for f and g on every sample.
func CheckImage[T any, E finset.Eq[T]](samples []finset.Finset[T, E], f, g func(T) T) []Violation {
	c := &checker[T, E]{empty: finset.Empty[T, E]()}
	id := func(a T) T { return a }
	gf := func(a T) T { return g(f(a)) }
	for _, s := range samples {
		img := finset.Image[T, E](s, f)
		c.expect(finset.Image[T, E](s, id).Equal(s), "image-id", "image(id, %v)", s)
		c.expect(finset.Image[T, E](img, g).Equal(finset.Image[T, E](s, gf)), "image-comp", "on %v", s)
		c.expect(img.Card() <= s.Card(), "image-card", "card(image(f, %v)) = %d", s, img.Card())
		c.expect(s.ForAll(func(a T) bool { return img.Contains(f(a)) }), "image-mem", "image(f, %v) = %v", s, img)
	}
	c.expect(finset.Image[T, E](c.empty, f).IsEmpty(), "image-empty", "image(f, empty) not empty")
	return c.vs
}

// CheckRepresentation verifies that every operation is insensitive to the
// order of the witness slices. Each entry of witnesses is one duplicate-free
// slice; every permutation in perms (index slices) is applied to it.
func CheckRepresentation[T any, E finset.Eq[T]](witnesses [][]T, perms func(n int) [][]int) []Violation {
	c := &checker[T, E]{empty: finset.Empty[T, E]()}
	var variants [][]finset.Finset[T, E]
	for _, w := range witnesses {
		base, err := finset.FromNodup[T, E](w)
		if err != nil {
			c.expect(false, "nodup", "%v", err)
			continue
		}
		vs := []finset.Finset[T, E]{base}
		for _, p := range perms(len(w)) {
			pw := make([]T, len(w))
			for i, j := range p {
				pw[i] = w[j]
			}
			vs = append(vs, finset.FromSlice[T, E](pw))
		}
		variants = append(variants, vs)
	}
	for _, vs1 := range variants {
		for _, v := range vs1 {
			c.expect(v.Equal(vs1[0]) && v.Card() == vs1[0].Card(), "repr", "%v vs %v", v, vs1[0])
		}
		for _, vs2 := range variants {
			u0 := vs1[0].Union(vs2[0])
			i0 := vs1[0].Intersection(vs2[0])
			d0 := vs1[0].Difference(vs2[0])
			for _, a := range vs1 {
				for _, b := range vs2 {
					c.expect(a.Union(b).Equal(u0), "repr-union", "%v, %v", a, b)
					c.expect(a.Intersection(b).Equal(i0), "repr-inter", "%v, %v", a, b)
					c.expect(a.Difference(b).Equal(d0), "repr-diff", "%v, %v", a, b)
					c.expect(a.Subset(b) == vs1[0].Subset(vs2[0]), "repr-subset", "%v, %v", a, b)
				}
			}
		}
	}
	return c.vs
}

// CheckWitnesses verifies that sets built from different but E-equal
// elements behave alike. Both slices of a pair must denote the same set.
// f and keep must agree on E-equal arguments.
func CheckWitnesses[T any, E finset.Eq[T]](pairs [][2][]T, f func(T) T, keep func(T) bool) []Violation {
	c := &checker[T, E]{empty: finset.Empty[T, E]()}
	var as, bs []finset.Finset[T, E]
	for _, p := range pairs {
		a, b := finset.FromSlice[T, E](p[0]), finset.FromSlice[T, E](p[1])
		if !a.Equal(b) {
			c.expect(false, "witness", "%v and %v differ", a, b)
			continue
		}
		as, bs = append(as, a), append(bs, b)
	}
	for i, a := range as {
		b := bs[i]
		c.expect(a.Card() == b.Card(), "witness-card", "%v, %v", a, b)
		c.expect(finset.Image[T, E](a, f).Equal(finset.Image[T, E](b, f)), "witness-image",
			"image(f, %v) = %v, image(f, %v) = %v", a, finset.Image[T, E](a, f), b, finset.Image[T, E](b, f))
		c.expect(a.Filter(keep).Equal(b.Filter(keep)), "witness-filter",
			"filter(%v) = %v, filter(%v) = %v", a, a.Filter(keep), b, b.Filter(keep))
		c.expect(a.Exists(keep) == b.Exists(keep), "witness-exists", "%v, %v", a, b)
		c.expect(a.ForAll(keep) == b.ForAll(keep), "witness-forall", "%v, %v", a, b)
		for j, s := range as {
			t := bs[j]
			c.expect(a.Union(s).Equal(b.Union(t)), "witness-union", "%v | %v, %v | %v", a, s, b, t)
			c.expect(a.Intersection(s).Equal(b.Intersection(t)), "witness-inter", "%v & %v, %v & %v", a, s, b, t)
			c.expect(a.Difference(s).Equal(b.Difference(t)), "witness-diff", "%v - %v, %v - %v", a, s, b, t)
			c.expect(a.Subset(s) == b.Subset(t), "witness-subset", "%v <= %v, %v <= %v", a, s, b, t)
		}
	}
	return c.vs
}

// Shuffles returns all rotations of [0, n) and their reversals.
func Shuffles(n int) [][]int {
	var ps [][]int
	for r := 0; r < n; r++ {
		p := make([]int, n)
		q := make([]int, n)
		for i := range p {
			p[i] = (i + r) % n
			q[n-1-i] = p[i]
		}
		ps = append(ps, p, q)
	}
	return ps
}
