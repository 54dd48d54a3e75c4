package metrics

import "sort"

// Collector counts driver commands for the session summary logged at exit.
type Collector struct {
	commands map[string]uint64
	failures map[string]uint64
}

func New() *Collector {
	return &Collector{
		commands: map[string]uint64{},
		failures: map[string]uint64{},
	}
}

func (c *Collector) Record(command string, err error) {
	c.commands[command]++
	if err != nil {
		c.failures[command]++
	}
}

// Snapshot returns slog-ready key/value pairs, sorted by command name.
func (c *Collector) Snapshot() []any {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var total, failed uint64
	out := make([]any, 0, 2*len(names)+4)
	for _, name := range names {
		total += c.commands[name]
		failed += c.failures[name]
		out = append(out, name, c.commands[name])
	}
	return append(out, "commandsTotal", total, "failuresTotal", failed)
}
