// Copyright 2025 TensorLogic Engine. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reason_test

import (
	"fmt"
	"log"

	"github.com/tensorlogic-ml/tensorlogic/logic"
	"github.com/tensorlogic-ml/tensorlogic/reason"
)

func ExampleEngine_Reason() {
	engine, err := reason.New(reason.WithDefaultRules())
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Reason(reason.Text("if all humans are mortal then socrates is mortal"))
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range result.Conclusions {
		fmt.Printf("%.2f %s\n", c.Confidence, c.Statement)
	}
}

func ExampleEngine_CreateRule() {
	engine, err := reason.New()
	if err != nil {
		log.Fatal(err)
	}

	rule := engine.CreateRule("mortality",
		[]string{"human", "alive"},
		[]string{"mortal"},
		logic.Deductive, 0.9)

	fmt.Println(rule.ID, rule.Kind)
	// Output: mortality deductive
}

func ExampleEngine_Analogy() {
	engine, err := reason.New()
	if err != nil {
		log.Fatal(err)
	}

	analogy, err := engine.Analogy(
		reason.Text("electron orbits the nucleus"),
		reason.Text("planet orbits the sun"),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(analogy.Mappings) <= 5)
	// Output: true
}
