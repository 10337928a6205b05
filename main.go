package main

import "bank-reconciler/cmd"

func main() {
	cmd.Execute()
}
