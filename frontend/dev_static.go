package main

// Tiny dev server for the client-side toggle widget page. The real host
// platform injects the widget into rendered pages for registered viewers;
// locally we just serve the static files next to this file.

import (
	"log"
	"net/http"
)

func main() {
	fs := http.FileServer(http.Dir("."))
	http.Handle("/", fs)
	log.Println("toggle widget UI on http://localhost:8081")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
