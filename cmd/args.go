package cmd

// legacyFlags maps multi-letter single-dash flags onto their long form.
// pflag only knows one-letter shorthands and would read -dbg as -d bg.
var legacyFlags = map[string]string{
	"-dbg": "--debug",
}

func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i, a := range out {
		if a == "--" {
			break
		}
		// the value of -d/-t may legitimately be "-dbg"
		if i > 0 && takesValue(out[i-1]) {
			continue
		}
		if long, ok := legacyFlags[a]; ok {
			out[i] = long
		}
	}
	return out
}

func takesValue(flag string) bool {
	switch flag {
	case "-d", "--define", "-t", "--target", "-c", "--config":
		return true
	}
	return false
}
