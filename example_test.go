package reps_test

import (
	"fmt"

	"github.com/aretw0/reps"
	"github.com/aretw0/reps/pkg/registry"
	"github.com/aretw0/reps/pkg/rep"
)

// ExampleRender shows the package-level entry point on a remote RegExp handle.
func ExampleRender() {
	out := reps.Render(map[string]any{
		"actor":         "server1.conn1.obj31",
		"class":         "RegExp",
		"displayString": "/a.*/g",
	}, rep.Props{})
	fmt.Println(out)
	// Output: /a.*/g
}

// ExampleEngine_Register adds an application rep ahead of the stock ones.
func ExampleEngine_Register() {
	eng := reps.New()
	money := rep.Func{
		ID: "Money",
		Probe: func(v any, typ string, noGrip bool) bool {
			return typ == "money"
		},
		Draw: func(p rep.Props) string {
			m := p.Object.(map[string]any)
			return fmt.Sprintf("%v %v", m["amount"], m["currency"])
		},
	}
	if err := eng.Register(money, registry.Before("Grip")); err != nil {
		fmt.Println(err)
		return
	}

	v := map[string]any{"type": "money", "amount": 12, "currency": "EUR"}
	fmt.Println(eng.Render(v, rep.Props{}))
	fmt.Println(eng.Render(v, rep.Props{NoGrip: true}))
	// Output:
	// 12 EUR
	// Object { amount: 12, currency: "EUR", type: "money" }
}

// ExampleEngine_Inspect reports which rep was picked and on what type.
func ExampleEngine_Inspect() {
	res := reps.New().Inspect([]int{1, 2}, nil, false)
	fmt.Println(res.Descriptor.Name(), res.Type, res.Fallback)
	// Output: Array object false
}
