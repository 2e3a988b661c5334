// Package schedule defines the activity model consumed by the timeline
// layout engine, along with decoders for schedule interchange files.
//
// A schedule is an ordered list of activities with computed dates: the CPM
// pass that produces start/end dates, criticality, and float happens
// upstream, outside this module. This package only validates shape and
// internal consistency; it never recomputes dates.
//
// # File Formats
//
// Schedules are read from JSON (the DABO API payload shape) or TOML:
//
//	{
//	  "project": "Maple St Clinic",
//	  "activities": [
//	    {"id": "A100", "name": "Mobilization", "start": "2026-04-01",
//	     "end": "2026-04-05", "duration": 4, "wbs": "01",
//	     "critical": true, "float": 0, "milestone": false,
//	     "predecessors": []}
//	  ]
//	}
//
// The TOML form uses [[activities]] blocks with the same field names.
//
// # WBS Divisions
//
// WBS codes follow CSI MasterFormat divisions ("01"–"16"). Unknown or
// blank codes resolve to the General Requirements division rather than
// failing, so a schedule with sparse WBS data still lays out.
package schedule
