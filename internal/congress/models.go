package congress

// Pagination reports server-side pagination state for a list response.
type Pagination struct {
	Count int     `json:"count"`
	Next  *string `json:"next,omitempty"`
	Prev  *string `json:"prev,omitempty"`
}

// RequestInfo echoes the request attributes Congress.gov includes in
// every response.
type RequestInfo struct {
	ContentType string `json:"contentType"`
	Format      string `json:"format"`
}

// LatestAction is the most recent action taken on an amendment.
type LatestAction struct {
	ActionDate string  `json:"actionDate"`
	Text       string  `json:"text"`
	ActionTime *string `json:"actionTime,omitempty"`
}

// Sponsor identifies the member sponsoring an amendment.
type Sponsor struct {
	BioguideID string  `json:"bioguideId"`
	FullName   string  `json:"fullName"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   string  `json:"lastName"`
	Party      string  `json:"party"`
	State      string  `json:"state"`
	District   *string `json:"district,omitempty"`
	URL        string  `json:"url"`
}

// OnBehalfOfSponsor identifies a member who submitted or withdrew an
// amendment on behalf of its sponsor.
type OnBehalfOfSponsor struct {
	BioguideID string  `json:"bioguideId"`
	FullName   string  `json:"fullName"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   string  `json:"lastName"`
	Party      string  `json:"party"`
	State      string  `json:"state"`
	Type       string  `json:"type"`
	URL        string  `json:"url"`
}

// Cosponsor identifies a member cosponsoring an amendment.
type Cosponsor struct {
	BioguideID               string  `json:"bioguideId"`
	FullName                 string  `json:"fullName"`
	FirstName                string  `json:"firstName"`
	MiddleName               *string `json:"middleName,omitempty"`
	LastName                 string  `json:"lastName"`
	Party                    string  `json:"party"`
	State                    string  `json:"state"`
	URL                      string  `json:"url"`
	SponsorshipDate          string  `json:"sponsorshipDate"`
	IsOriginalCosponsor      bool    `json:"isOriginalCosponsor"`
	SponsorshipWithdrawnDate *string `json:"sponsorshipWithdrawnDate,omitempty"`
}

// Cosponsors is the embedded cosponsor summary on an amendment.
type Cosponsors struct {
	CountIncludingWithdrawnCosponsors int         `json:"countIncludingWithdrawnCosponsors"`
	Count                             int         `json:"count"`
	URL                               string      `json:"url"`
	Item                              []Cosponsor `json:"item,omitempty"`
}

// AmendedBill is the bill an amendment amends.
type AmendedBill struct {
	Congress          int    `json:"congress"`
	Type              string `json:"type"`
	OriginChamber     string `json:"originChamber"`
	OriginChamberCode string `json:"originChamberCode"`
	Number            int    `json:"number"`
	URL               string `json:"url"`
	Title             string `json:"title"`
}

// AmendedAmendment is the amendment another amendment amends.
type AmendedAmendment struct {
	Number      int     `json:"number"`
	Description *string `json:"description,omitempty"`
	Purpose     *string `json:"purpose,omitempty"`
	Congress    int     `json:"congress"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
}

// AmendmentsToAmendment summarizes the amendments filed against an
// amendment.
type AmendmentsToAmendment struct {
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// SourceSystem identifies the system an action originated from.
type SourceSystem struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// RecordedVote is a roll call vote attached to an action.
type RecordedVote struct {
	RollNumber    int    `json:"rollNumber"`
	URL           string `json:"url"`
	Chamber       string `json:"chamber"`
	Congress      int    `json:"congress"`
	Date          string `json:"date"`
	SessionNumber int    `json:"sessionNumber"`
}

// Committee is a committee associated with an action.
type Committee struct {
	URL        string `json:"url"`
	SystemCode string `json:"systemCode"`
	Name       string `json:"name"`
}

// Action is one action taken on an amendment.
type Action struct {
	ActionDate    string         `json:"actionDate"`
	ActionTime    *string        `json:"actionTime,omitempty"`
	Text          string         `json:"text"`
	Type          string         `json:"type"`
	ActionCode    *string        `json:"actionCode,omitempty"`
	SourceSystem  SourceSystem   `json:"sourceSystem"`
	Committees    []Committee    `json:"committees,omitempty"`
	RecordedVotes []RecordedVote `json:"recordedVotes,omitempty"`
}

// Actions is the embedded action summary on an amendment.
type Actions struct {
	Count int      `json:"count"`
	URL   string   `json:"url"`
	Item  []Action `json:"item,omitempty"`
}

// Note is a note attached to an amendment.
type Note struct {
	Text string `json:"text"`
}

// Notes is the embedded note container on an amendment.
type Notes struct {
	Item []Note `json:"item"`
}

// AmendedTreaty is the treaty an amendment amends.
type AmendedTreaty struct {
	Congress     int    `json:"congress"`
	TreatyNumber int    `json:"treatyNumber"`
	URL          string `json:"url"`
}

// TextFormat is one downloadable rendering of an amendment text.
type TextFormat struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// TextFormats is the container for text formats.
type TextFormats struct {
	Item []TextFormat `json:"item"`
}

// TextVersion is one published version of an amendment's text.
type TextVersion struct {
	Type    string      `json:"type"`
	Date    string      `json:"date"`
	Formats TextFormats `json:"formats"`
}

// TextVersions is the embedded text version container on an amendment.
type TextVersions struct {
	Item []TextVersion `json:"item"`
}

// Amendment is the full amendment record.
type Amendment struct {
	Number                int                    `json:"number"`
	Description           *string                `json:"description,omitempty"`
	Purpose               *string                `json:"purpose,omitempty"`
	Congress              int                    `json:"congress"`
	Type                  string                 `json:"type"`
	Chamber               *string                `json:"chamber,omitempty"`
	LatestAction          *LatestAction          `json:"latestAction,omitempty"`
	Sponsors              []Sponsor              `json:"sponsors,omitempty"`
	OnBehalfOfSponsor     []OnBehalfOfSponsor    `json:"onBehalfOfSponsor,omitempty"`
	Cosponsors            *Cosponsors            `json:"cosponsors,omitempty"`
	ProposedDate          *string                `json:"proposedDate,omitempty"`
	SubmittedDate         *string                `json:"submittedDate,omitempty"`
	AmendedBill           *AmendedBill           `json:"amendedBill,omitempty"`
	AmendedAmendment      *AmendedAmendment      `json:"amendedAmendment,omitempty"`
	AmendmentsToAmendment *AmendmentsToAmendment `json:"amendmentsToAmendment,omitempty"`
	Notes                 *Notes                 `json:"notes,omitempty"`
	AmendedTreaty         *AmendedTreaty         `json:"amendedTreaty,omitempty"`
	Actions               *Actions               `json:"actions,omitempty"`
	TextVersions          *TextVersions          `json:"textVersions,omitempty"`
	UpdateDate            *string                `json:"updateDate,omitempty"`
	URL                   *string                `json:"url,omitempty"`
}

// AmendmentsResponse is the list response for amendment collections.
type AmendmentsResponse struct {
	Amendments []Amendment  `json:"amendments"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Request    *RequestInfo `json:"request,omitempty"`
}

// AmendmentResponse is the detail response for one amendment.
type AmendmentResponse struct {
	Amendment Amendment    `json:"amendment"`
	Request   *RequestInfo `json:"request,omitempty"`
}

// ActionsResponse lists the actions taken on an amendment.
type ActionsResponse struct {
	Actions    []Action     `json:"actions"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Request    *RequestInfo `json:"request,omitempty"`
}

// CosponsorsResponse lists the cosponsors of an amendment.
type CosponsorsResponse struct {
	Cosponsors []Cosponsor  `json:"cosponsors"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Request    *RequestInfo `json:"request,omitempty"`
}

// TextVersionsResponse lists the text versions of an amendment.
type TextVersionsResponse struct {
	TextVersions []TextVersion `json:"textVersions"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
	Request      *RequestInfo  `json:"request,omitempty"`
}

// AmendmentsToAmendmentResponse lists the amendments filed against an
// amendment.
type AmendmentsToAmendmentResponse struct {
	Amendments []Amendment  `json:"amendments"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Request    *RequestInfo `json:"request,omitempty"`
}
