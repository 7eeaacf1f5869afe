package policy

// GroupTree はツリー構造グループの親子インデックス。
// ノードをidキーのフラットな表として持ち、走査は再帰ではなく
// 訪問済み管理付きの明示的なループで行う（循環データでも停止する）。
type GroupTree struct {
	parent   map[string]string
	children map[string][]string
}

// NewGroupTree は空のGroupTreeを生成する。
func NewGroupTree() *GroupTree {
	return &GroupTree{
		parent:   make(map[string]string),
		children: make(map[string][]string),
	}
}

// Add はノードを登録する。parentIDが空の場合はルートノード。
func (t *GroupTree) Add(id, parentID string) {
	t.parent[id] = parentID
	if parentID != "" {
		t.children[parentID] = append(t.children[parentID], id)
	}
}

// Parent は親ノードIDを返す。ルートまたは未登録の場合は空文字列。
func (t *GroupTree) Parent(id string) string {
	return t.parent[id]
}

// Ancestors は祖先ノードIDを親→ルートの順で返す（自身は含まない）。
func (t *GroupTree) Ancestors(id string) []string {
	var result []string
	visited := map[string]bool{id: true}

	for cur := t.parent[id]; cur != ""; cur = t.parent[cur] {
		if visited[cur] {
			break
		}
		visited[cur] = true
		result = append(result, cur)
	}
	return result
}

// Descendants は子孫ノードIDを幅優先順で返す（自身は含まない）。
func (t *GroupTree) Descendants(id string) []string {
	var result []string
	visited := map[string]bool{id: true}

	queue := append([]string(nil), t.children[id]...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		result = append(result, cur)
		queue = append(queue, t.children[cur]...)
	}
	return result
}
