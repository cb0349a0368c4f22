package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/blackrose-blackhat/cryptobuddy/backend/internal/responder"
)

// DemoQueries are replayed by RunDemo.
var DemoQueries = []string{
	"Hello!",
	"What's the most sustainable crypto?",
	"Which crypto is most profitable?",
	"What should I invest in?",
	"Tell me about Bitcoin",
	"Compare all cryptos",
	"List available cryptos",
}

const rule = 60

// Run is the interactive read loop. It returns when the user exits,
// input ends, or ctx is cancelled.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.banner(out)

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		s.userColor.Fprint(out, "You: ")

		select {
		case <-ctx.Done():
			fmt.Fprintf(out, "\n\n%s: %s\n", s.label(), responder.Interrupted())
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintf(out, "\n\n%s: %s\n", s.label(), responder.Interrupted())
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}

			reply, done := s.Handle(line)
			if reply == "" {
				continue
			}
			fmt.Fprintf(out, "\n%s: %s\n\n", s.label(), reply)
			if done {
				return nil
			}
		}
	}
}

// RunDemo answers DemoQueries in order and prints each exchange.
func (s *Session) RunDemo(out io.Writer) {
	fmt.Fprintf(out, "🧪 **%s Demo Mode**\n\n", s.name)
	fmt.Fprintln(out, s.Greet())
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))

	for _, q := range DemoQueries {
		fmt.Fprintf(out, "\n🗣️ **User**: %s\n", q)
		fmt.Fprintf(out, "🤖 **%s**: %s\n", s.name, s.Respond(q))
		fmt.Fprintln(out, "\n"+strings.Repeat("-", 30))
	}

	fmt.Fprintf(out, "\n%s\n", responder.Disclaimer())
}

func (s *Session) banner(out io.Writer) {
	s.headColor.Fprintln(out, strings.Repeat("=", rule))
	s.headColor.Fprintf(out, "🤖 Welcome to %s v%s\n", s.name, s.version)
	s.headColor.Fprintln(out, strings.Repeat("=", rule))
	fmt.Fprintln(out, s.Greet())
	fmt.Fprintln(out, "\n💡 Type 'help' for commands, 'disclaimer' for legal info, or 'quit' to exit")
	fmt.Fprintln(out)
}

func (s *Session) label() string {
	return s.botColor.Sprint(s.name)
}
