/*
Package scenario loads activator rule sets from YAML files.

A scenario file lists activators in the order they are registered, which is also
the order used to break ranking ties:

	activators:
	  - name: greetings
	    type: regex
	    rules:
	      - pattern: "hi|hello.*"
	        target: /main/hello
	      - pattern: "(?<city>\\w+) weather"
	        target: /main/weather
	  - name: events
	    type: event
	    rules:
	      - event: start
	        target: /main
	  - name: fallback
	    type: catchall
	    target: /main/fallback
	    confidence: 0.1

Every pattern is compiled by Build, so a scenario that builds cleanly never fails
on the per-turn match path.
*/
package scenario
