/*
Package search finds the shortest expressions whose output is a given goal vector.

Expressions are built by increasing length. Level n holds, for each output vector,
a single expression of length n yielding it: the one whose top operator binds the tightest,
since it is the easiest to reuse as an operand. A level is built from all the shorter ones:

	binary expressions   l op r, with len(l) + len(op) + len(r) = n
	unary expressions    op e, with len(e) = n-1
	parentheses          (e), with len(e) = n-2
	leaves               variables and literals whose text has n characters

An expression longer than another one with the same output is only kept if its operator is better.
Solutions are reported as soon as they are found, whether they are kept or not.

Once a level is built, it is frozen and never modified again, so it can be read
by several goroutines while the next level is being built. The building of a level is split into tasks
whose partial results are merged two by two, always in the same order, so that
the content of a level does not depend on the number of goroutines.

A search is typically run this way:

	s, err := search.New(cfg)
	if err != nil {
		return err
	}
	sols := make(chan search.Solution)
	go s.Search(sols, nil)
	for sol := range sols {
		fmt.Println(sol.Length, sol.Text)
	}
*/
package search
