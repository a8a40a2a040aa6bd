package testutil

// LibraryIDF defines every construction and schedule the building fixtures
// reference.
const LibraryIDF = `
ScheduleTypeLimits, Fraction, 0, 1, Continuous;
ScheduleTypeLimits, Temperature, -60, 200, Continuous, Temperature;
ScheduleTypeLimits, Any Number, , , Continuous;

Schedule:Constant, Always 21, Temperature, 21.0;
Schedule:Constant, Always 24, Temperature, 24.0;
Schedule:Constant, Activity 120, Any Number, 120;
Schedule:Day:Interval, Office Occ Day, Fraction, No, 08:00, 0.0, 18:00, 1.0, 24:00, 0.0;
Schedule:Day:Interval, Off Day, Fraction, No, 24:00, 0.0;
Schedule:Week:Daily, Office Occ Week,
  Off Day, Office Occ Day, Office Occ Day, Office Occ Day, Office Occ Day, Office Occ Day, Off Day,
  Off Day, Office Occ Day, Off Day, Off Day, Off Day;
Schedule:Year, Office Occ, Fraction, Office Occ Week, 1, 1, 12, 31;

Material, Brick, MediumRough, 0.1, 0.89, 1920, 790, 0.9, 0.7, 0.7;
Material, Insulation, Rough, 0.05, 0.03, 43, 1210;
Material:NoMass, Gypsum R, Smooth, 0.08;
WindowMaterial:SimpleGlazingSystem, Glass, 2.7, 0.4, 0.6;

Construction, Exterior Wall, Brick, Insulation;
Construction, Interior Wall, Gypsum R;
Construction, Window, Glass;
`

// BuildingHCL is two 5x5x3 m zones side by side sharing one wall. West has a
// window and a heating setpoint literal; both are ideal loads in group 0.
const BuildingHCL = `
locals {
  ext    = "Exterior Wall"
  height = 3
}

simulation {
  timesteps_per_hour = 4
}

zone "West" {
  building_program          = "Office"
  zone_program              = "OpenOffice"
  people_per_area           = 0.05
  lighting_density_per_area = 10
  equipment_load_per_area   = 8
  ventilation_per_person    = 0.0025
  occupancy_schedule        = "Office Occ"
  occupancy_activity_schedule = "Activity 120"
  lighting_schedule         = "Office Occ"
  equipment_schedule        = "Office Occ"
  heating_setpoint_schedule = "Always 21"
  cooling_setpoint_schedule = "Always 24"
  heating_setpoint          = 20

  surface "West_Floor" {
    type         = "Floor"
    boundary     = "Ground"
    construction = local.ext
    loops        = [[[0, 0, 0], [0, 5, 0], [5, 5, 0], [5, 0, 0]]]
  }
  surface "West_WallS" {
    type         = "Wall"
    construction = local.ext
    loops        = [[[0, 0, 0], [5, 0, 0], [5, 0, local.height], [0, 0, local.height]]]
    opening "West_Win" {
      type         = "FixedWindow"
      construction = "Window"
      loops        = [[[1, 0, 1], [4, 0, 1], [4, 0, 2], [1, 0, 2]]]
    }
  }
  surface "West_WallE" {
    type         = "Wall"
    boundary     = "Surface"
    partner      = "East_WallW"
    construction = "Interior Wall"
    loops        = [[[5, 0, 0], [5, 5, 0], [5, 5, 3], [5, 0, 3]]]
  }
}

zone "East" {
  building_program          = "Office"
  zone_program              = "OpenOffice"
  people_per_area           = 0.05
  lighting_density_per_area = 10
  occupancy_schedule        = "Office Occ"
  lighting_schedule         = "Office Occ"
  heating_setpoint_schedule = "Always 21"
  cooling_setpoint_schedule = "Always 24"

  surface "East_Floor" {
    type         = "Floor"
    boundary     = "Ground"
    construction = local.ext
    loops        = [[[5, 0, 0], [5, 5, 0], [10, 5, 0], [10, 0, 0]]]
  }
  surface "East_WallW" {
    type         = "Wall"
    boundary     = "Surface"
    partner      = "West_WallE"
    construction = "Interior Wall"
    loops        = [[[5, 5, 0], [5, 0, 0], [5, 0, 3], [5, 5, 3]]]
  }
  surface "East_WallN" {
    type         = "Wall"
    construction = upper("exterior wall")
    loops        = [[[10, 5, 0], [5, 5, 0], [5, 5, 3], [10, 5, 3]]]
  }
}

outputs = [
  "Output:Variable,*,Zone Air Temperature,hourly;",
  "Output:Meter,Electricity:Facility,monthly;",
]
`

// BuildingYAML describes the same building as BuildingHCL without the
// window or the simulation block.
const BuildingYAML = `
zones:
  - name: West
    building_program: Office
    zone_program: OpenOffice
    people_per_area: 0.05
    occupancy_schedule: Office Occ
    heating_setpoint_schedule: Always 21
    cooling_setpoint_schedule: Always 24
    heating_setpoint: 20
    surfaces:
      - name: West_Floor
        type: Floor
        boundary: Ground
        construction: Exterior Wall
        loops: [[[0, 0, 0], [0, 5, 0], [5, 5, 0], [5, 0, 0]]]
      - name: West_WallE
        type: Wall
        boundary: Surface
        partner: East_WallW
        construction: Interior Wall
        loops: [[[5, 0, 0], [5, 5, 0], [5, 5, 3], [5, 0, 3]]]
  - name: East
    building_program: Office
    zone_program: OpenOffice
    heating_setpoint_schedule: Always 21
    cooling_setpoint_schedule: Always 24
    surfaces:
      - name: East_Floor
        type: Floor
        boundary: Ground
        construction: Exterior Wall
        loops: [[[5, 0, 0], [5, 5, 0], [10, 5, 0], [10, 0, 0]]]
      - name: East_WallW
        type: Wall
        boundary: Surface
        partner: West_WallE
        construction: Interior Wall
        loops: [[[5, 5, 0], [5, 0, 0], [5, 0, 3], [5, 5, 3]]]
outputs:
  - "Output:Meter,Electricity:Facility,monthly;"
`
