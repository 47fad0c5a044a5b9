package main

import "github.com/cleitonmarx/symbiont-smartread/internal/app"

func main() {
	err := app.NewSmartReadApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
