package leveldata

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"testing"
	"testing/fstest"
)

func encodeCells(gids ...uint32) string {
	buf := make([]byte, 4*len(gids))
	for i, gid := range gids {
		binary.LittleEndian.PutUint32(buf[i*4:], gid)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func levelDoc(cells string) string {
	return fmt.Sprintf(`<map width="2" height="2" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="2">
  <image source="tiles.png" width="32" height="32"/>
  <tile id="1">
   <properties>
    <property name="slope" value="45_up_right"/>
   </properties>
  </tile>
 </tileset>
 <layer name="wg-tiles" width="2" height="2">
  <data encoding="base64">%s</data>
 </layer>
 <objectgroup name="PlayerSpawn">
  <object id="1" x="48" y="16">
   <properties><property name="spawnIndex" value="1"/></properties>
  </object>
  <object id="2" x="16" y="16">
   <properties><property name="spawnIndex" value="0"/></properties>
  </object>
 </objectgroup>
</map>`, cells)
}

func TestLoadCollisionData(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(levelDoc(encodeCells(1, 0, 2, 0)))},
	}

	data, err := LoadCollisionData(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if data.MapWidth != 32 || data.MapHeight != 32 {
		t.Errorf("map size = %dx%d px", data.MapWidth, data.MapHeight)
	}

	if len(data.SolidRects) != 2 {
		t.Fatalf("got %d solid rects", len(data.SolidRects))
	}
	first := data.SolidRects[0]
	if first.X != 0 || first.Y != 0 || first.W != 16 || first.H != 16 {
		t.Errorf("rect 0 = %+v", first)
	}
	if first.SlopeType != "" {
		t.Errorf("rect 0 slope = %q, want plain solid", first.SlopeType)
	}
	second := data.SolidRects[1]
	if second.X != 0 || second.Y != 16 {
		t.Errorf("rect 1 = %+v", second)
	}
	if second.SlopeType != "45_up_right" {
		t.Errorf("rect 1 slope = %q", second.SlopeType)
	}

	// Spawns come back sorted left-to-right regardless of document order.
	if len(data.SpawnPoints) != 2 {
		t.Fatalf("got %d spawn points", len(data.SpawnPoints))
	}
	if data.SpawnPoints[0].X != 16 || data.SpawnPoints[0].Index != 0 {
		t.Errorf("spawn 0 = %+v", data.SpawnPoints[0])
	}
	if data.SpawnPoints[1].X != 48 || data.SpawnPoints[1].Index != 1 {
		t.Errorf("spawn 1 = %+v", data.SpawnPoints[1])
	}
}

func TestLoadAllLevels(t *testing.T) {
	doc := levelDoc(encodeCells(0, 0, 0, 0))
	fsys := fstest.MapFS{
		"levels/beta.tmx":  {Data: []byte(doc)},
		"levels/alpha.tmx": {Data: []byte(doc)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("names = %v", names)
	}
	if levels["alpha"] == nil || levels["beta"] == nil {
		t.Errorf("levels map = %v", levels)
	}
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty levels dir")
	}
}
