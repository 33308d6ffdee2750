package congress

import "fmt"

// ResourceDefinition describes one Congress.gov resource collection and
// the metadata used to derive its MCP tools.
type ResourceDefinition struct {
	// Name is the canonical resource identifier.
	Name string

	// Path is the endpoint path under /v3.
	Path string

	// ToolPrefix is the snake_case stem used in generated tool names.
	ToolPrefix string

	// Description summarizes what the resource covers.
	Description string

	// PathParameterHint explains how to shape pathSegments for this
	// resource.
	PathParameterHint string

	// SamplePath is a representative endpoint path.
	SamplePath string
}

// BuildDescription renders the tool description shown to MCP clients.
func (d ResourceDefinition) BuildDescription() string {
	return fmt.Sprintf("%s This tool works with the `/v3/%s` endpoint. %s", d.Description, d.Path, d.PathParameterHint)
}

// ResourceDefinitions catalogs every Congress.gov resource exposed
// through generated tools. Tool names, endpoint paths, and descriptions
// all derive from these entries.
var ResourceDefinitions = []ResourceDefinition{
	{
		Name:              "bill",
		Path:              "bill",
		ToolPrefix:        "bill",
		Description:       "Work with bills and joint resolutions, including metadata and related content.",
		PathParameterHint: "Provide path segments as [congress, bill_type, bill_number], such as [118, 'hr', 2670].",
		SamplePath:        "bill/118/hr/2670",
	},
	{
		Name:              "summaries",
		Path:              "summaries",
		ToolPrefix:        "summaries",
		Description:       "Access CRS-authored bill summaries from the `/v3/summaries` collection.",
		PathParameterHint: "Provide [congress, bill_type, bill_number] to target summaries for a specific bill.",
		SamplePath:        "summaries/118/hr/2670",
	},
	{
		Name:              "congress",
		Path:              "congress",
		ToolPrefix:        "congress",
		Description:       "Retrieve data about individual congresses and related session metadata.",
		PathParameterHint: "Use segments such as [118] to target a single congress or append ['current'] for the latest.",
		SamplePath:        "congress/118",
	},
	{
		Name:              "committee",
		Path:              "committee",
		ToolPrefix:        "committee",
		Description:       "Query congressional committee information including history and membership.",
		PathParameterHint: "Segments often follow [chamber, committee_code] or [congress, chamber, committee_code], e.g., ['house', 'hsap00'].",
		SamplePath:        "committee/house/hsap00",
	},
	{
		Name:              "committee-report",
		Path:              "committee-report",
		ToolPrefix:        "committee_report",
		Description:       "Retrieve committee reports and related metadata or text attachments.",
		PathParameterHint: "Segments typically follow [congress, report_type, report_number], such as [118, 'hrpt', 5].",
		SamplePath:        "committee-report/118/hrpt/5",
	},
	{
		Name:              "committee-print",
		Path:              "committee-print",
		ToolPrefix:        "committee_print",
		Description:       "Access committee prints and supporting documents produced for hearings.",
		PathParameterHint: "Use [congress, chamber, jacket_number], for example [118, 'house', 'CPRT-118HPRT00361'].",
		SamplePath:        "committee-print/118/house/CPRT-118HPRT00361",
	},
	{
		Name:              "committee-meeting",
		Path:              "committee-meeting",
		ToolPrefix:        "committee_meeting",
		Description:       "Access hearings and meetings scheduled by committees.",
		PathParameterHint: "Provide [congress, chamber, event_id] to retrieve a specific meeting when available.",
		SamplePath:        "committee-meeting/118/house/115538",
	},
	{
		Name:              "hearing",
		Path:              "hearing",
		ToolPrefix:        "hearing",
		Description:       "Retrieve committee hearing transcripts, metadata, and witness information.",
		PathParameterHint: "Segments commonly include [congress, chamber, jacket_number].",
		SamplePath:        "hearing/118/house/HHRG-118-II24-20230324-SD001",
	},
	{
		Name:              "member",
		Path:              "member",
		ToolPrefix:        "member",
		Description:       "Access information about members of Congress, including biographical data and sponsored items.",
		PathParameterHint: "Use a bioguide ID such as ['A000360'] or segments like ['congress', 118, 'state', 'CA'] for rosters.",
		SamplePath:        "member/A000360",
	},
	{
		Name:              "nomination",
		Path:              "nomination",
		ToolPrefix:        "nomination",
		Description:       "Query presidential nominations and their status, actions, and hearing history.",
		PathParameterHint: "Segments usually follow [congress, nomination_number], such as [118, 'PN56'].",
		SamplePath:        "nomination/118/PN56",
	},
	{
		Name:              "treaty",
		Path:              "treaty",
		ToolPrefix:        "treaty",
		Description:       "Retrieve treaties submitted to the Senate and related actions or texts.",
		PathParameterHint: "Use [congress, treaty_number] for treaty details, for example [118, 1].",
		SamplePath:        "treaty/118/1",
	},
	{
		Name:              "crsreport",
		Path:              "crsreport",
		ToolPrefix:        "crs_report",
		Description:       "Fetch Congressional Research Service reports and associated metadata.",
		PathParameterHint: "Provide [report_number] such as ['R47355'] to access a specific CRS report.",
		SamplePath:        "crsreport/R47355",
	},
	{
		Name:              "law",
		Path:              "law",
		ToolPrefix:        "law",
		Description:       "Retrieve public and private laws, including text and related actions.",
		PathParameterHint: "Segments typically follow [congress, law_type, law_number], such as [117, 'publaw', 58].",
		SamplePath:        "law/117/publaw/58",
	},
	{
		Name:              "house-communication",
		Path:              "house-communication",
		ToolPrefix:        "house_communication",
		Description:       "Work with executive and agency communications received by the House.",
		PathParameterHint: "Segments commonly include [congress, communication_type, communication_number], e.g., [118, 'EC', 1].",
		SamplePath:        "house-communication/118/EC/1",
	},
	{
		Name:              "senate-communication",
		Path:              "senate-communication",
		ToolPrefix:        "senate_communication",
		Description:       "Access executive and presidential communications received by the Senate.",
		PathParameterHint: "Segments commonly include [congress, communication_type, communication_number], e.g., [118, 'PN', 1].",
		SamplePath:        "senate-communication/118/PN/1",
	},
	{
		Name:              "house-requirement",
		Path:              "house-requirement",
		ToolPrefix:        "house_requirement",
		Description:       "Inspect House communication requirements and their matching submissions.",
		PathParameterHint: "Provide [requirement_number] such as [1201] to review a specific requirement.",
		SamplePath:        "house-requirement/1201",
	},
	{
		Name:              "house-vote",
		Path:              "house-vote",
		ToolPrefix:        "house_vote",
		Description:       "Retrieve roll call votes published as part of the House vote beta endpoint.",
		PathParameterHint: "Segments follow [congress, session, vote_number], for example [118, 1, 5].",
		SamplePath:        "house-vote/118/1/5",
	},
	{
		Name:              "congressional-record",
		Path:              "congressional-record",
		ToolPrefix:        "congressional_record",
		Description:       "Work with the daily Congressional Record collection and its articles.",
		PathParameterHint: "This endpoint relies on query parameters such as fromDateTime and issue identifiers.",
		SamplePath:        "congressional-record",
	},
	{
		Name:              "daily-congressional-record",
		Path:              "daily-congressional-record",
		ToolPrefix:        "daily_congressional_record",
		Description:       "Browse the digitized daily Congressional Record by volume and issue number.",
		PathParameterHint: "Provide [volume_number, issue_number] like [169, '100'] for a particular issue.",
		SamplePath:        "daily-congressional-record/169/100",
	},
	{
		Name:              "bound-congressional-record",
		Path:              "bound-congressional-record",
		ToolPrefix:        "bound_congressional_record",
		Description:       "Access bound Congressional Record volumes organized by year, month, and day.",
		PathParameterHint: "Use [year, month, day] values such as [169, 5, 1] to reach a bound issue.",
		SamplePath:        "bound-congressional-record/169/5/1",
	},
}
