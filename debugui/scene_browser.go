package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
)

// ObjectRow is one line of the scene browser.
type ObjectRow struct {
	Id       scene.ObjectId
	Geometry string
	Position string
}

// SceneBrowser lists objects with filtering, sorting and paging. Selecting a
// row goes through the engine, so it is refused during a gesture.
type SceneBrowser struct {
	engine  *transform.Engine
	store   *scene.Store
	cancel  func()
	rows    []ObjectRow
	stale   bool
	perPage int
	page    int

	filterText    string
	sortColumn    int
	sortAscending bool
}

// NewSceneBrowser creates a browser that rebuilds its rows after store
// changes.
func NewSceneBrowser(engine *transform.Engine, store *scene.Store, perPage int) *SceneBrowser {
	if perPage <= 0 {
		perPage = 50
	}
	sb := &SceneBrowser{
		engine:        engine,
		store:         store,
		stale:         true,
		perPage:       perPage,
		sortAscending: true,
	}
	sb.cancel = store.Subscribe(func(scene.Change) {
		sb.stale = true
	})
	return sb
}

// Close stops listening to the store.
func (sb *SceneBrowser) Close() {
	if sb.cancel != nil {
		sb.cancel()
		sb.cancel = nil
	}
}

// SetFilter keeps rows whose id, geometry or position contains text.
func (sb *SceneBrowser) SetFilter(text string) {
	sb.filterText = text
	sb.page = 0
}

// SortBy orders rows by column 0 (id), 1 (geometry) or 2 (position).
func (sb *SceneBrowser) SortBy(column int, ascending bool) {
	sb.sortColumn = column
	sb.sortAscending = ascending
	sb.sortRows()
}

// Rows returns the filtered, sorted rows.
func (sb *SceneBrowser) Rows() []ObjectRow {
	sb.rebuildIfNeeded()
	if sb.filterText == "" {
		return sb.rows
	}

	filter := strings.ToLower(sb.filterText)
	filtered := make([]ObjectRow, 0, len(sb.rows))
	for _, row := range sb.rows {
		if strings.Contains(fmt.Sprintf("%d", row.Id), filter) ||
			strings.Contains(row.Geometry, filter) ||
			strings.Contains(row.Position, filter) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (sb *SceneBrowser) rebuildIfNeeded() {
	if !sb.stale {
		return
	}
	sb.rows = sb.rows[:0]
	for obj := range sb.store.Objects() {
		p := obj.Pose.Position
		sb.rows = append(sb.rows, ObjectRow{
			Id:       obj.Id,
			Geometry: obj.Appearance.Geometry.String(),
			Position: fmt.Sprintf("%.2f, %.2f, %.2f", p[0], p[1], p[2]),
		})
	}
	sb.sortRows()
	sb.stale = false
}

func (sb *SceneBrowser) sortRows() {
	sort.SliceStable(sb.rows, func(i, j int) bool {
		a, b := sb.rows[i], sb.rows[j]
		var less bool
		switch sb.sortColumn {
		case 1:
			less = a.Geometry < b.Geometry
		case 2:
			less = a.Position < b.Position
		default:
			less = a.Id < b.Id
		}
		if !sb.sortAscending {
			return !less
		}
		return less
	})
}

// Select asks the engine to select id.
func (sb *SceneBrowser) Select(id scene.ObjectId) error {
	return sb.engine.Select(id)
}

func (sb *SceneBrowser) Render(*editor.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 350), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	filter := sb.filterText
	if imgui.InputTextWithHint("##search", "Search...", &filter, imgui.InputTextFlagsNone, nil) {
		sb.SetFilter(filter)
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.SetFilter("")
	}

	rows := sb.Rows()
	selection := sb.engine.State().Selection

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Id")
		imgui.TableSetupColumn("Geometry")
		imgui.TableSetupColumn("Position")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		start := min(sb.page*sb.perPage, len(rows))
		end := min(start+sb.perPage, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), row.Id == selection, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				_ = sb.Select(row.Id)
			}
			imgui.TableNextColumn()
			imgui.Text(row.Geometry)
			imgui.TableNextColumn()
			imgui.Text(row.Position)
		}
		imgui.EndTable()
	}

	if len(rows) > sb.perPage {
		totalPages := (len(rows) + sb.perPage - 1) / sb.perPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", sb.page+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.page > 0 {
			sb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.page < totalPages-1 {
			sb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d objects", len(rows)))
	}

	imgui.End()
}
