package main

import "github.com/hobbiton-games/quiz-admin/cmd/server/cmd"

func main() {
	cmd.Execute()
}
