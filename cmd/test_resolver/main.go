package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raushankrgupta/skin-finder/config"
	"github.com/raushankrgupta/skin-finder/narration"
	"github.com/raushankrgupta/skin-finder/resolver"
)

func main() {
	config.LoadConfig()

	names := []string{
		"Steve",
		"Ender Dragon",
		"Technoblade",
	}

	for _, strategy := range []string{"local", "namemc"} {
		res := resolver.ForStrategy(strategy)
		fmt.Printf("==== Strategy: %s ====\n", res.Name())

		for _, name := range names {
			fmt.Printf("Resolving: %s\n", name)
			sink := &narration.BuilderSink{}
			skins := res.Resolve(context.Background(), name, sink)

			fmt.Print(sink.String())
			b, _ := json.MarshalIndent(skins, "", "  ")
			fmt.Printf("Variants: %s\n", string(b))
			fmt.Println("--------------------------------------------------")
		}
	}
}
