package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `govdash administers a government carbon-emission programme.

Screens and their tools:
- Overview: get_overview (stat cards, verified vs unverified trend, hotspots, recent submissions).
- Emission limits: list_companies, update_company, set_sector_limit, list_sectors, classify_compliance.
- Company verification: list_registrations, decide_registration.
- Queries: list_queries, update_query, delete_query, query_stats.
- Audit: recent_activity shows who changed what, newest first.

Rules of engagement:
1) Read before writing: list the target rows first and use the ids or emails they return.
2) set_sector_limit changes every company in the sector at once; confirm the sector name with list_sectors.
3) decide_registration removes the request from the pending queue. It cannot be undone.
4) Every mutation is recorded in the activity log under your operator name.

Docs:
- govdash://docs/compliance (how compliance status is derived)
- govdash://docs/filters (search and filter semantics)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "govdash://docs/compliance",
		Name:        "docs_compliance",
		Title:       "Compliance classification",
		Description: "How a company's compliance status is derived from its emissions and limit.",
		Content: `# Compliance classification

Every company has current emissions and an emission limit, both in tons.
The status is derived on read and never stored:

| Condition | Status | Label |
|---|---|---|
| current > limit | Exceeded | Exceeded |
| current / limit >= 0.85 | Approaching | Approaching Limit |
| otherwise | Compliant | Compliant |

The 85% boundary is inclusive: 425 of 500 is Approaching, 424 of 500 is Compliant.

Examples: 850/800 Exceeded, 780/800 Approaching, 480/500 Approaching,
400/500 Compliant.

A limit of zero or below leaves no headroom. Any emissions above it are
Exceeded and a company at exactly the limit is Approaching.

Use ` + "`classify_compliance`" + ` to check a hypothetical value before editing.
`,
	},
	{
		URI:         "govdash://docs/filters",
		Name:        "docs_filters",
		Title:       "Search and filters",
		Description: "Search and filter semantics shared by the list tools.",
		Content: `# Search and filters

All list tools return rows in store order; there is no sorting or paging.

- Search is a case-insensitive substring match. When a tool searches several
  fields, a row matches if any field contains the term.
- Categorical filters are combined with the search using AND.
- An empty search matches every row.

| Tool | Search fields | Filters |
|---|---|---|
| list_companies | name | status (all, compliant, approaching, exceeded), sector (exact, all) |
| list_registrations | name, email, organization | none |
| list_queries | company, category | status (Open, In Progress, Resolved, All) |

An empty result is not an error.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
