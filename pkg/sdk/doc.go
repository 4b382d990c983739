// Package shelf provides an embeddable Go client for the shelf library
// catalog search engine, backed by PostgreSQL, Redis, Valkey or an
// in-process catalog.
//
// A search interprets free text (typo correction, intent detection, query
// expansion), filters and pages the catalog, then ranks the page by
// relevance or sorts it by a requested field:
//
//	client, _ := shelf.New(ctx, shelf.WithPostgres("postgres://localhost/shelf"))
//	defer client.Close()
//
//	res, _ := client.Search(ctx, shelf.SearchParams{
//	    Query:      "pyhton programing",
//	    Categories: []string{"Programming"},
//	    Limit:      10,
//	})
//	for _, b := range res.Books {
//	    fmt.Println(b.Title, b.Author)
//	}
//	fmt.Println(res.Insights.CorrectedTerms)
//
// For tests and demos the catalog can live in process:
//
//	client, _ := shelf.New(ctx, shelf.WithItems(books...))
package shelf
