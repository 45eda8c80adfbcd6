package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tubetop/internal/daterange"
)

// prompter reads interactive answers through a single buffered reader so no
// input is lost between prompts.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints a prompt and reads one trimmed answer.
func (p *prompter) line(prompt string) string {
	fmt.Fprint(p.out, prompt)

	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return ""
	}
	return strings.TrimSpace(answer)
}

// count reads a positive integer, falling back to fallback on a blank or
// unparseable answer.
func (p *prompter) count(prompt string, fallback int) int {
	answer := p.line(prompt)
	if answer == "" {
		return fallback
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		fmt.Fprintf(p.out, "Ignoring invalid count %q, using %d\n", answer, fallback)
		return fallback
	}
	return n
}

// promptExtractOptions runs the interactive flow: keyword, date-range menu,
// video and comment counts. Counts keep their flag defaults when the answer
// is blank.
func promptExtractOptions(p *prompter, opts *extractOptions) error {
	fmt.Fprintln(p.out, "YouTube Top Comments Extractor")
	fmt.Fprintln(p.out, strings.Repeat("=", 40))

	opts.Keyword = p.line("Enter keyword to search for videos: ")
	if opts.Keyword == "" {
		return fmt.Errorf("no keyword provided")
	}

	fmt.Fprintln(p.out, "\nDate Range Options:")
	fmt.Fprintln(p.out, "1. Last 7 days")
	fmt.Fprintln(p.out, "2. Last 30 days")
	fmt.Fprintln(p.out, "3. Last 3 months")
	fmt.Fprintln(p.out, "4. Last 6 months")
	fmt.Fprintln(p.out, "5. Last year")
	fmt.Fprintln(p.out, "6. Custom date range")
	fmt.Fprintln(p.out, "7. No date filter (all time)")

	choice := p.line("Choose date range (1-7): ")
	opts.Dates = p.dateInputForChoice(choice)

	opts.MaxVideos = p.count("Maximum videos to process (default 10): ", opts.MaxVideos)
	opts.TopComments = p.count("Top comments per video (default 10): ", opts.TopComments)

	return nil
}

// dateInputForChoice maps a menu answer to a date-range input. Unrecognized
// answers mean no date filter.
func (p *prompter) dateInputForChoice(choice string) daterange.Input {
	daysByChoice := map[string]int{
		"1": 7,
		"2": 30,
		"3": 90,
		"4": 180,
		"5": 365,
	}

	if days, ok := daysByChoice[choice]; ok {
		return daterange.Input{DaysAgoStart: days}
	}

	if choice == "6" {
		start := p.line("Enter start date (YYYY-MM-DD): ")
		end := p.line("Enter end date (YYYY-MM-DD, or press Enter for today): ")
		if end == "" {
			end = time.Now().UTC().Format("2006-01-02")
		}
		return daterange.Input{StartDate: start, EndDate: end}
	}

	return daterange.Input{}
}
