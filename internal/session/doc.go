// Package session owns the state of one disc-golf practice session.
//
// State changes only through Commands. Reducer.Reduce is a pure function
// from (State, Command) to a new State plus the domain events the change
// produced; invalid commands are ignored rather than reported. Machine
// wraps the reducer for a UI event loop: it keeps the single live State,
// assigns throw ids, gates the location feed, queues throw feedback and
// delivers events to subscribers.
//
// Basic usage:
//
//	m := session.NewMachine(session.DefaultConfig())
//	m.Dispatch(session.BeginSettingTarget{})
//	m.Dispatch(session.SetTarget{Point: target, CurrentLocation: &here})
//	m.Dispatch(session.BeginMarkingThrow{})
//	m.Dispatch(session.RecordThrow{Point: landing})
//
// Machine is not safe for concurrent use; callers serialize commands.
package session
