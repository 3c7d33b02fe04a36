// Package drawer adds expandable "drawer" rows to a virtual list.
//
// A Controller owns the expanded/collapsed state of every row and exposes a
// row height callback and a row render callback for listview.VirtualListModel.
// Rows can be toggled instantly or with a 250ms quadratic ease-out height
// animation. Animations are driven by a Scheduler that runs a single frame loop
// on tea.Tick while at least one Tween is active; on every frame the Controller
// asks the list to recompute row offsets so the rows below move with the
// animated one.
//
// Typical wiring from a Bubble Tea model:
//
//	ctrl, err := drawer.New(content, dims)
//	list.SetRowHeight(ctrl.RowHeight)
//	list.SetRowRenderer(ctrl.RowRenderer)
//	ctrl.SetListRef(list)
//
// and in Update, forward every message with ctrl.Update(msg) so frame messages
// reach the scheduler.
package drawer
