package behaviour

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj == nil {
		t.Fatal("NewGameObject returned nil")
	}

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active by default")
	}

	if obj.Transform == nil {
		t.Fatal("Transform should not be nil")
	}

	if obj.Transform.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected position (0,0,0), got %v", obj.Transform.Position)
	}

	if obj.Transform.Scale != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected scale (1,1,1), got %v", obj.Transform.Scale)
	}
}

func TestTransformTranslate(t *testing.T) {
	transform := &Transform{
		Position: mgl32.Vec3{5, 5, 5},
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	transform.Translate(mgl32.Vec3{1, 2, 3})

	expected := mgl32.Vec3{6, 7, 8}
	if transform.Position != expected {
		t.Errorf("Expected position %v, got %v", expected, transform.Position)
	}
}

func TestTransformAxes(t *testing.T) {
	transform := &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}

	if !transform.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected forward (0,0,-1), got %v", transform.Forward())
	}
	if !transform.Up().ApproxEqual(mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected up (0,1,0), got %v", transform.Up())
	}
	if !transform.Right().ApproxEqual(mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected right (1,0,0), got %v", transform.Right())
	}

	// Yaw 90 degrees: forward rotates from -Z to -X. Compare components
	// with an absolute tolerance; the float32 rotation leaves ~1e-7 noise
	// on the zeroed axes, which ApproxEqualThreshold rejects near zero.
	transform.Rotation = mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 1, 0})
	if !axisApprox(transform.Forward(), mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("Expected forward (-1,0,0) after yaw, got %v", transform.Forward())
	}
	if !axisApprox(transform.Up(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected up unchanged after yaw, got %v", transform.Up())
	}
}

func axisApprox(got, want mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		diff := got[i] - want[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-5 {
			return false
		}
	}
	return true
}

type MockComponent struct {
	BaseComponent
	startCalled  bool
	updateCalled bool
	fixedCalled  bool
}

func (m *MockComponent) Start() {
	m.startCalled = true
}

func (m *MockComponent) Update() {
	m.updateCalled = true
}

func (m *MockComponent) FixedUpdate() {
	m.fixedCalled = true
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)

	if len(obj.Components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.Components))
	}

	if comp.GetGameObject() != obj {
		t.Error("Component's GameObject reference not set correctly")
	}
}

func TestGameObjectRemoveComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}

	obj.AddComponent(comp)
	obj.RemoveComponent(comp)

	if len(obj.Components) != 0 {
		t.Errorf("Expected 0 components after removal, got %d", len(obj.Components))
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	found := GetComponent[*MockComponent](obj)
	if found != comp {
		t.Error("GetComponent did not return the attached component")
	}
}

func TestComponentManagerLifecycle(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	cm.RegisterGameObject(obj)
	if !comp.startCalled {
		t.Error("Start should be called on registration")
	}

	cm.UpdateAll()
	if !comp.updateCalled {
		t.Error("Update should be called by UpdateAll")
	}

	cm.FixedUpdateAll()
	if !comp.fixedCalled {
		t.Error("FixedUpdate should be called by FixedUpdateAll")
	}

	cm.DestroyGameObject(obj)
	cm.UpdateAll()
	if len(cm.GetAllGameObjects()) != 0 {
		t.Errorf("Expected 0 objects after destroy, got %d", len(cm.GetAllGameObjects()))
	}
}

func TestFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	belt := NewGameObject("Belt")
	belt.Tag = "conveyor"
	other := NewGameObject("Crate")
	second := NewGameObject("Belt2")
	second.Tag = "conveyor"

	cm.RegisterGameObject(belt)
	cm.RegisterGameObject(other)
	cm.RegisterGameObject(second)

	if found := cm.FindGameObject("Belt"); found != belt {
		t.Error("FindGameObject should return the object registered under that name")
	}
	if found := cm.FindGameObject("Missing"); found != nil {
		t.Errorf("Expected nil for unknown name, got %v", found)
	}

	tagged := cm.FindGameObjectsWithTag("conveyor")
	if len(tagged) != 2 {
		t.Errorf("Expected 2 tagged objects, got %d", len(tagged))
	}
	if len(cm.FindGameObjectsWithTag("none")) != 0 {
		t.Error("Expected no objects for unused tag")
	}
}

func TestInactiveGameObjectSkipped(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	obj.Active = false

	cm.RegisterGameObject(obj)
	cm.UpdateAll()
	cm.FixedUpdateAll()

	if comp.updateCalled || comp.fixedCalled {
		t.Error("Inactive GameObject components should not be updated")
	}
}
