// Command transitcatalogue is the engine's entry point: make_base builds a
// catalogue from an input document on stdin and persists it to a binary
// blob; process_requests loads that blob and answers queries streamed on
// stdin, writing the response document to stdout.
package main

import (
	"fmt"
	"log"
	"os"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/codec"
	"transitcatalogue/internal/dispatch"
	"transitcatalogue/internal/docmodel"
	"transitcatalogue/internal/ingest"
	"transitcatalogue/internal/router"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: transitcatalogue make_base|process_requests")
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "make_base":
		makeBase()
	case "process_requests":
		processRequests()
	default:
		usage()
		os.Exit(1)
	}
}

func makeBase() {
	doc, err := docmodel.DecodeInput(os.Stdin)
	if err != nil {
		log.Fatalf("transitcatalogue: decode input document: %v", err)
	}

	cat := catalogue.New()
	if err := ingest.Run(cat, doc.BaseRequests); err != nil {
		log.Fatalf("transitcatalogue: ingest: %v", err)
	}

	routerSettings := doc.RoutingSettings.ToRouterSettings()
	rt := router.Build(cat, routerSettings)
	renderSettings := doc.RenderSettings.ToMapviewSettings()

	blob, err := codec.Serialize(cat, renderSettings, routerSettings, rt)
	if err != nil {
		log.Fatalf("transitcatalogue: serialize: %v", err)
	}

	if err := os.WriteFile(doc.SerializationSettings.File, blob, 0o644); err != nil {
		log.Fatalf("transitcatalogue: write %s: %v", doc.SerializationSettings.File, err)
	}
}

func processRequests() {
	doc, err := docmodel.DecodeInput(os.Stdin)
	if err != nil {
		log.Fatalf("transitcatalogue: decode input document: %v", err)
	}

	blob, err := os.ReadFile(doc.SerializationSettings.File)
	if err != nil {
		log.Fatalf("transitcatalogue: read %s: %v", doc.SerializationSettings.File, err)
	}

	cat, renderSettings, _, rt, err := codec.Deserialize(blob)
	if err != nil {
		log.Fatalf("transitcatalogue: deserialize %s: %v", doc.SerializationSettings.File, err)
	}

	responses := make([]docmodel.Response, len(doc.StatRequests))
	for i, req := range doc.StatRequests {
		resp, err := dispatch.Dispatch(cat, rt, renderSettings, req)
		if err != nil {
			log.Fatalf("transitcatalogue: dispatch request %d: %v", req.ID, err)
		}
		responses[i] = resp
	}

	if err := docmodel.EncodeOutput(os.Stdout, responses); err != nil {
		log.Fatalf("transitcatalogue: encode response document: %v", err)
	}
}
