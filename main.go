package main

import "github.com/hudengine/hudbuild/cmd"

func main() {
	cmd.Execute()
}
