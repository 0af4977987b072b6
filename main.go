package main

import "github.com/inovacc/projtrack/cmd"

func main() {
	cmd.Execute()
}
