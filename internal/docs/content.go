package docs

var topics = []Topic{
	{
		Name:    "usage",
		Title:   "Usage",
		Summary: "Reading, listing, searching and exporting notes",
		Content: topicUsage,
	},
	{
		Name:    "format",
		Title:   "Notes File Format",
		Summary: "How to write a notes file, and what makes one malformed",
		Content: topicFormat,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "The .notes.yaml file, its fields and defaults",
		Content: topicConfig,
	},
	{
		Name:    "search",
		Title:   "Searching",
		Summary: "How keywords are matched against topics",
		Content: topicSearch,
	},
}

const topicUsage = `Usage
=====

  notes                         Print every topic
  notes <topic>                 Print one topic (exact title, any case, or slug)
  notes list                    List topics with a one-line summary
  notes search <keyword>        Print topics matching a keyword
  notes export -o FILE          Write all topics to FILE
  notes check [FILE]            Validate a notes file
  notes docs [topic]            Read this documentation

Global flags
------------

  --source, -s FILE    Read FILE instead of the bundled notes
  --format, -f NAME    text, markdown, html, or json
  --color / --no-color Force color on or off
  --config FILE        Use FILE instead of the nearest .notes.yaml

Flags override the config file. Export picks the format from the file
extension (.html, .md, .json, .txt) unless --format is given.

Exit codes: 0 on success, 1 when a topic is not found or anything fails.
`

const topicFormat = `Notes File Format
=================

A notes file is plain text. Each topic starts with a heading line:

    # Threads

Everything up to the next heading is the topic body. Blank lines at the
start and end of a body are dropped. One fenced block per topic is its
code sample; the word after the opening fence is the language tag:

    # Threads
    A thread is an independent flow of execution.
    ` + "```java" + `
    new Thread(task).start();
    ` + "```" + `

An empty fence is ignored and does not count as the sample.
Lines starting with %% are comments. Headings inside a fence are part
of the code sample.

A file ending in .yaml or .yml is read as YAML instead:

    entries:
      - title: Threads
        body: A thread is an independent flow of execution.
        lang: java
        code: new Thread(task).start();

Errors
------

'notes check FILE' reports the first problem with its line number:

  - text before the first heading
  - a heading with an empty title
  - a duplicate title
  - a second code sample in one topic
  - a code block that is never closed

An empty file is valid and has no topics.
`

const topicConfig = `Configuration Reference
=======================

notes looks for .notes.yaml in the current directory and each parent.
--config FILE uses FILE instead. Without a config file the defaults
apply.

    source: notes/java.md   # notes file, relative to the config file
    format: text            # text | markdown | html | json
    color: auto             # auto | always | never

source
  Notes file to read. Empty means the bundled notes.

format
  Default output format. Default: text.

color
  auto enables color only on a terminal and when NO_COLOR is unset.
  Default: auto.
`

const topicSearch = `Searching
=========

    notes search thread

Keywords are split into words of letters and digits and compared
without regard to case. A word matches any word in a topic's title,
body or code sample that starts with it, so "thread" finds "Threads"
and "Thread States".

With several words, a topic must match all of them:

    notes search thread waiting

Results are printed in the order the topics appear in the notes file.
When nothing matches, notes says so and exits 0.
`
