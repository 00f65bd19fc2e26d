package submit

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultCooldown is used when the TOO_SOON body names no wait. The site's
// observed minimum is one minute.
const defaultCooldown = 60 * time.Second

// The site phrases waits as "please wait one minute", "wait 5 minutes", or
// "You have 4m 32s left to wait".
var (
	waitPhraseRe = regexp.MustCompile(`(?i)wait\s+(\w+)\s+(second|minute)s?`)
	leftToWaitRe = regexp.MustCompile(`(?i)(?:(\d+)m\s*)?(\d+)\s*(?:s|seconds?)\s+left to wait`)
	// Spelled-out counts the site has been seen to use. Anything not listed
	// falls through to the 60-second default.
	spelledOut = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"fifteen": 15, "thirty": 30, "sixty": 60,
	}
)

// cooldownWait derives the minimum wait from a TOO_SOON response body,
// falling back to 60 seconds when the body names none.
func cooldownWait(body string) time.Duration {
	if m := leftToWaitRe.FindStringSubmatch(body); m != nil {
		mins, _ := strconv.Atoi(m[1])
		secs, err := strconv.Atoi(m[2])
		if err == nil && mins*60+secs > 0 {
			return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
		}
	}

	if m := waitPhraseRe.FindStringSubmatch(body); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			n = spelledOut[strings.ToLower(m[1])]
		}
		if n > 0 {
			unit := time.Second
			if strings.EqualFold(m[2], "minute") {
				unit = time.Minute
			}
			return time.Duration(n) * unit
		}
	}

	return defaultCooldown
}
