package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/pagimos/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
