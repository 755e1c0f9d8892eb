package batch

// Assemble materializes the final argument vector for one batch: the template
// arguments followed by every token the measurement pass accepted from the
// queued records. The state is rewound to the template seed and the queue is
// re-walked with the argv tail as destination, so the assembly pass stops at
// exactly the same token as the measurement pass did.
func Assemble(template []string, queue []string, st *State) []string {
	argv := make([]string, len(template)+st.Entries())
	copy(argv, template)
	st.Reset()

	dst := argv[len(template):]
	for _, rec := range queue {
		st.Consume(rec, dst)
	}
	return argv
}
