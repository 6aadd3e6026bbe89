package main

import "github.com/example/baan-scheduler/cmd"

func main() {
	cmd.Execute()
}
