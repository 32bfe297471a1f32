// Interactive shell. Commands operate on books loaded once at startup and
// persisted when the session ends cleanly.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

const shellPrompt = "Enter a command with arguments separated with a ' ' character: "

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Shell reads commands from stdin one line at a time. The books are
loaded once at startup and written back when the session ends with 'close',
'exit' or end of input. Type 'help' inside the shell for the command list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shellHandler executes one shell command and returns its output.
type shellHandler struct {
	help string
	run  func(s *shellSession, args []string) (string, error)
}

// shellSession holds the mutable state of one interactive run.
type shellSession struct {
	ab       *types.AddressBook
	nb       *types.NotesBook
	commands map[string]shellHandler
}

// errShellStop signals a clean session stop; its text is the goodbye line.
type errShellStop struct{ message string }

func (e errShellStop) Error() string { return e.message }

func runShell(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	session := newShellSession(ab, nb)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print(shellPrompt)
		if !scanner.Scan() {
			break
		}
		name, cmdArgs := parseShellInput(scanner.Text())
		if name == "" {
			continue
		}

		output, err := session.execute(name, cmdArgs)
		if err != nil {
			var stop errShellStop
			if errors.As(err, &stop) {
				cmd.Println(stop.message)
				break
			}
			logger.Warn("shell command failed",
				zap.String("command", name), zap.Error(err))
			cmd.Printf("Command '%s' failed: %v\n", name, err)
			continue
		}
		cmd.Printf("Command '%s' executed successfully. Result is:\n%s\n", name, output)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return persist(store, ab, nb)
}

// parseShellInput splits a line into a lowercased command name and its
// arguments. Empty lines yield an empty name.
func parseShellInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func newShellSession(ab *types.AddressBook, nb *types.NotesBook) *shellSession {
	s := &shellSession{ab: ab, nb: nb}
	s.commands = map[string]shellHandler{
		"hello":         {"Print a greeting.", (*shellSession).hello},
		"help":          {"List commands, or show help for one command.", (*shellSession).helpCommand},
		"add":           {"add <name> <phone>: create a contact.", (*shellSession).addContact},
		"change":        {"change <name> <phone>: replace a contact's primary phone.", (*shellSession).changeContact},
		"phone":         {"phone <name>: show one contact.", (*shellSession).getContact},
		"search":        {"search <query>: find contacts by substring.", (*shellSession).searchContacts},
		"all":           {"List every contact.", (*shellSession).allContacts},
		"delete":        {"delete <name>: remove a contact.", (*shellSession).deleteContact},
		"add-birthday":  {"add-birthday <name> <YYYY.MM.DD>: set a birthday.", (*shellSession).addBirthday},
		"show-birthday": {"show-birthday <name>: show a contact's birthday.", (*shellSession).showBirthday},
		"birthdays":     {"birthdays <days>: contacts to congratulate per day.", (*shellSession).birthdays},
		"add-email":     {"add-email <name> <email>: set an email.", (*shellSession).addEmail},
		"add-address":   {"add-address <name> <address>...: set an address.", (*shellSession).addAddress},
		"add-note":      {"add-note <name> <project-role>: create a note.", (*shellSession).addNote},
		"delete-note":   {"delete-note <name>: remove a note.", (*shellSession).deleteNote},
		"all-notes":     {"List every note.", (*shellSession).allNotes},
		"add-tasks":     {"add-tasks <name> <text>...: append task text to a note.", (*shellSession).addTasks},
		"add-hobby":     {"add-hobby <name> <hobby>...: append a hobby to a note.", (*shellSession).addHobby},
		"edit-hobby":    {"edit-hobby <name> <old> <new>: replace a hobby.", (*shellSession).editHobby},
		"find-role":     {"find-role <project-role>: notes matching a role.", (*shellSession).findRole},
		"find-hobby":    {"find-hobby <hobby>...: notes having a hobby.", (*shellSession).findHobby},
		"close":         {"Save and leave the shell.", (*shellSession).stop},
		"exit":          {"Save and leave the shell.", (*shellSession).stop},
	}
	return s
}

func (s *shellSession) execute(name string, args []string) (string, error) {
	handler, ok := s.commands[name]
	if !ok {
		return "", fmt.Errorf("command '%s' is not supported! Type 'help' to get list of supported commands", name)
	}
	return handler.run(s, args)
}

func (s *shellSession) hello(args []string) (string, error) {
	var b strings.Builder
	if len(args) > 0 {
		fmt.Fprintf(&b, "Warning: Command doesn't expect any arguments. Received: %s\n", strings.Join(args, " "))
	}
	b.WriteString("How can I help you?")
	return b.String(), nil
}

func (s *shellSession) helpCommand(args []string) (string, error) {
	if len(args) > 0 {
		handler, ok := s.commands[args[0]]
		if !ok {
			return "Command not supported. Type 'help' to get list of supported commands.", nil
		}
		return fmt.Sprintf("Command '%s' help:\n%s", args[0], handler.help), nil
	}

	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Supported commands: ")
	for _, name := range names {
		b.WriteString("\n" + name)
	}
	b.WriteString("\n\nType 'help <command>' to get help for specific command.")
	return b.String(), nil
}

func (s *shellSession) stop(args []string) (string, error) {
	return "", errShellStop{message: "Good bye!"}
}

func (s *shellSession) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", argCountError("two arguments: username and phone", args)
	}
	record, err := types.NewRecord(args[0], args[1])
	if err != nil {
		return "", err
	}
	stored, ok := s.ab.Add(record)
	if !ok {
		return "", fmt.Errorf("user with username %s already exist. If you want to update number, please use 'change' command", args[0])
	}
	return fmt.Sprintf("Contact %s created with phone: %s.", stored.Name(), stored.Phones()[0]), nil
}

func (s *shellSession) changeContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", argCountError("two arguments: username and phone", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(record.Phones()[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s updated with phone: %s.", record.Name(), record.Phones()[0]), nil
}

func (s *shellSession) getContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: username", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Record found: \n%s", record), nil
}

func (s *shellSession) searchContacts(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: search query", args)
	}
	records := s.ab.Search(args[0])
	if len(records) == 0 {
		return "No records found with provided query.", nil
	}
	var b strings.Builder
	b.WriteString("Found Records: ")
	for _, record := range records {
		b.WriteString("\n" + record.String())
	}
	return b.String(), nil
}

func (s *shellSession) allContacts(args []string) (string, error) {
	var b strings.Builder
	if len(args) > 0 {
		fmt.Fprintf(&b, "Warning: Command doesn't expect any arguments. Received: %s\n", strings.Join(args, " "))
	}
	b.WriteString("All Records: ")
	for _, record := range s.ab.Records() {
		b.WriteString("\n" + record.String())
	}
	return b.String(), nil
}

func (s *shellSession) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: username", args)
	}
	if err := s.ab.Delete(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted.", args[0]), nil
}

func (s *shellSession) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", argCountError("two arguments: username and date", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s updated with date: %s.", record.Name(), args[1]), nil
}

func (s *shellSession) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: username", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("User's %s birthday is not set.", record.Name()), nil
	}
	return fmt.Sprintf("User's %s birthday is: %s", record.Name(), birthday.Format(types.DateLayout)), nil
}

func (s *shellSession) birthdays(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: number of days", args)
	}
	days, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("command expects a valid integer - number of days, please recheck your input")
	}
	if days < 0 {
		return "", fmt.Errorf("number of days must not be negative, got %d", days)
	}
	groups := s.ab.UpcomingBirthdays(days)
	if len(groups) == 0 {
		return "No contacts found", nil
	}
	var b strings.Builder
	b.WriteString("Contacts per day: ")
	for _, group := range groups {
		lines := make([]string, 0, len(group.Records))
		for _, record := range group.Records {
			lines = append(lines, record.String())
		}
		fmt.Fprintf(&b, "\nHave BD on %s:\n | %s",
			group.Date.Format(types.DateLayout), strings.Join(lines, "\n | "))
	}
	return b.String(), nil
}

func (s *shellSession) addEmail(args []string) (string, error) {
	if len(args) != 2 {
		return "", argCountError("two arguments: username and email", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddEmail(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s updated with email: %s.", record.Name(), args[1]), nil
}

func (s *shellSession) addAddress(args []string) (string, error) {
	if len(args) < 2 {
		return "", argCountError("two arguments: username and address", args)
	}
	record, err := s.ab.Find(args[0])
	if err != nil {
		return "", err
	}
	address := strings.Join(args[1:], " ")
	if err := record.AddAddress(address); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s updated with address: %s.", record.Name(), address), nil
}

func (s *shellSession) addNote(args []string) (string, error) {
	if len(args) != 2 {
		return "", argCountError("two arguments: note name and project role", args)
	}
	note, err := types.NewNote(args[0], args[1])
	if err != nil {
		return "", err
	}
	stored, ok := s.nb.Add(note)
	if !ok {
		return "", fmt.Errorf("note with name %s already exist", args[0])
	}
	return fmt.Sprintf("Note %s created with project role: %s.", stored.Name(), stored.ProjectRole()), nil
}

func (s *shellSession) deleteNote(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: note name", args)
	}
	if err := s.nb.Delete(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %s deleted.", args[0]), nil
}

func (s *shellSession) allNotes(args []string) (string, error) {
	var b strings.Builder
	if len(args) > 0 {
		fmt.Fprintf(&b, "Warning: Command doesn't expect any arguments. Received: %s\n", strings.Join(args, " "))
	}
	b.WriteString("All Notes: ")
	for _, note := range s.nb.Notes() {
		b.WriteString("\n" + note.String())
	}
	return b.String(), nil
}

func (s *shellSession) addTasks(args []string) (string, error) {
	if len(args) < 2 {
		return "", argCountError("two arguments: note name and task text", args)
	}
	note, err := s.nb.Find(args[0])
	if err != nil {
		return "", err
	}
	note.AddProjectTasks(strings.Join(args[1:], " "))
	return fmt.Sprintf("Tasks updated for note %s.", note.Name()), nil
}

func (s *shellSession) addHobby(args []string) (string, error) {
	if len(args) < 2 {
		return "", argCountError("two arguments: note name and hobby", args)
	}
	note, err := s.nb.Find(args[0])
	if err != nil {
		return "", err
	}
	hobby := strings.Join(args[1:], " ")
	note.AddHobby(hobby)
	return fmt.Sprintf("Hobby %q added to note %s.", hobby, note.Name()), nil
}

func (s *shellSession) editHobby(args []string) (string, error) {
	if len(args) != 3 {
		return "", argCountError("three arguments: note name, old hobby and new hobby", args)
	}
	note, err := s.nb.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := note.EditHobby(args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Hobby %q replaced with %q on note %s.", args[1], args[2], note.Name()), nil
}

func (s *shellSession) findRole(args []string) (string, error) {
	if len(args) != 1 {
		return "", argCountError("one argument: project role", args)
	}
	notes := s.nb.FindProjectRole(args[0])
	if len(notes) == 0 {
		return "No notes found with provided project role.", nil
	}
	var b strings.Builder
	b.WriteString("Found Notes: ")
	for _, note := range notes {
		b.WriteString("\n" + note.String())
	}
	return b.String(), nil
}

func (s *shellSession) findHobby(args []string) (string, error) {
	if len(args) == 0 {
		return "", argCountError("one argument: hobby", args)
	}
	notes := s.nb.FindHobby(strings.Join(args, " "))
	if len(notes) == 0 {
		return "No notes found with provided hobby.", nil
	}
	var b strings.Builder
	b.WriteString("Found Notes: ")
	for _, note := range notes {
		b.WriteString("\n" + note.String())
	}
	return b.String(), nil
}

func argCountError(expected string, args []string) error {
	return fmt.Errorf("command expects an input of %s, separated by a space. Received: %s",
		expected, strings.Join(args, " "))
}
