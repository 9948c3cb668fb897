package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/api"
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfig("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		// No config file means defaults everywhere (local ollama, local vision sidecar).
		config = common.EmptyConfig()
	}
	luma := api.NewAPI(config)
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case line == "models":
			printModels(luma)
		case line == "health":
			printHealth(luma)
		case strings.HasPrefix(line, "describe "):
			printImageDescription(luma, strings.TrimSpace(line[len("describe "):]))
		default:
			// Deltas are printed as they arrive so that slow local models still feel alive.
			_, err := luma.RespondStream(context.Background(), line, func(text string) {
				fmt.Print(text)
			})
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println()
		}
	}
	return nil
}

func printModels(luma api.API) {
	bundles, err := luma.ModelBundles()
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(bundles) == 0 {
		fmt.Println("no models found")
		return
	}
	for _, bundle := range bundles {
		fmt.Printf("%s\t%s\n", bundle.Name, bundle.Path)
	}
}

func printHealth(luma api.API) {
	languageModel, visionServer := luma.IsHealthy()
	fmt.Printf("language model: %s\n", healthString(languageModel))
	fmt.Printf("vision server: %s\n", healthString(visionServer))
}

func healthString(healthy bool) string {
	if healthy {
		return "ok"
	}
	return "unreachable"
}

func printImageDescription(luma api.API, path string) {
	if path == "" {
		fmt.Println("usage: describe <path>")
		return
	}
	result, err := luma.DescribeImageFile(context.Background(), path)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Text)
}
