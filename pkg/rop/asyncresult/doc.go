// Package asyncresult is the Result workflow over async tasks, with loops.
//
// Every combination point is an await: Combine awaits the first unit step
// and only then, on success, the second. While and For thread both the
// await and the failure short-circuit through each iteration, so a failing
// iteration is the loop's result and nothing after it runs. For releases
// its iterator however the loop ends.
package asyncresult
