package asg_test

import (
	"fmt"

	"github.com/ranjeethmahankali/symba/asg"
)

// ExampleEvaluator_Run builds x*x + y*y under a square root and evaluates
// it at x=3, y=4, the classic 3-4-5 right triangle.
func ExampleEvaluator_Run() {
	x := asg.NewSymbol('x')
	y := asg.NewSymbol('y')
	expr := x.Multiply(x).Add(y.Multiply(y)).Sqrt()

	ev := asg.NewEvaluator(expr)
	ev.SetVar('x', 3)
	ev.SetVar('y', 4)

	result, err := ev.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)

	// Output:
	// 5
}

// ExampleTree_Deduplicate shows a repeated subexpression (x+1 appearing
// twice) collapsing to a single shared node.
func ExampleTree_Deduplicate() {
	x := asg.NewSymbol('x')
	one, _ := asg.NewConstant(1)

	lhs := x.Add(one)
	rhs := x.Add(one)
	expr := lhs.Multiply(rhs)
	fmt.Println("before:", expr.Len())

	deduped, err := expr.Deduplicate()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("after:", deduped.Len())

	// Output:
	// before: 7
	// after: 4
}
