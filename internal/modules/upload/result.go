package upload

// State is the per-category upload result tag. Every category ends the
// pipeline in exactly one of these, so persistence and attachment selection
// can treat "no file given", "stored" and "tried and failed" uniformly.
type State int

const (
	NotAttempted State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "not_attempted"
	}
}

// Outcome is the result of one upload attempt. URL is set only when
// State == Succeeded, Err only when State == Failed.
type Outcome struct {
	State State
	URL   string
	Err   error
}

func (o Outcome) Attempted() bool { return o.State != NotAttempted }
func (o Outcome) OK() bool        { return o.State == Succeeded }

// DocumentOutcome keeps the original filename alongside the outcome so
// email attachments can carry a human-readable name.
type DocumentOutcome struct {
	Filename string
	Outcome
}

// ResultSet is the joined result of all upload attempts for one submission.
type ResultSet struct {
	Menu      Outcome
	FAQ       Outcome
	Documents []DocumentOutcome
}

// DocumentURLs returns the URLs of the successfully stored documents, in
// submission order.
func (rs ResultSet) DocumentURLs() []string {
	urls := make([]string, 0, len(rs.Documents))
	for _, d := range rs.Documents {
		if d.OK() {
			urls = append(urls, d.URL)
		}
	}
	return urls
}

// StoredFile is a filename+URL pair for a successfully uploaded object.
type StoredFile struct {
	Filename string
	URL      string
}

// StoredFiles lists every successful upload across all categories,
// menu and FAQ first.
func (rs ResultSet) StoredFiles() []StoredFile {
	var files []StoredFile
	if rs.Menu.OK() {
		files = append(files, StoredFile{Filename: "menu", URL: rs.Menu.URL})
	}
	if rs.FAQ.OK() {
		files = append(files, StoredFile{Filename: "faq", URL: rs.FAQ.URL})
	}
	for _, d := range rs.Documents {
		if d.OK() {
			files = append(files, StoredFile{Filename: d.Filename, URL: d.URL})
		}
	}
	return files
}
