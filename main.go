package main

import "github.com/inovacc/iconsync/cmd"

func main() {
	cmd.Execute()
}
